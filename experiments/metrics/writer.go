package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes CSV files into it
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(file, what string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}

	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", what, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", what, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "name", "kind", "depth", "duration", "episodes", "exploration", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Name,
			config.Kind,
			strconv.Itoa(config.Depth),
			config.Duration.String(),
			strconv.Itoa(config.Episodes),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", "agent configs", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "index", "agent1", "agent2", "starting_agent", "winner", "termination", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.Index),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingAgent,
			record.Winner,
			record.Termination,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "side", "agent", "column", "searcher", "duration", "episodes", "full_playouts", "early_stops", "nodes", "table_hits", "shortcut", "fallback"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Side,
			record.Agent,
			strconv.Itoa(record.Column),
			record.Searcher,
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.EarlyStops),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.TableHits),
			string(record.Shortcut),
			strconv.FormatBool(record.Fallback),
		})
	}
	return w.write("move_records.csv", "move records", header, rows)
}

func (w *Writer) WriteStandings(standings []Standing) error {
	header := []string{"agent", "played", "wins", "draws", "losses", "points"}
	rows := make([][]string, 0, len(standings))
	for _, s := range standings {
		rows = append(rows, []string{
			s.Agent,
			strconv.Itoa(s.Played),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Points),
		})
	}
	return w.write("standings.csv", "standings", header, rows)
}

func (w *Writer) WriteThroughput(records []ThroughputRecord) error {
	header := []string{"budget", "episodes", "nodes", "full_playouts", "early_stops", "elapsed", "episodes_per_second"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Budget.String(),
			strconv.Itoa(r.Episodes),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.FullPlayouts),
			strconv.Itoa(r.EarlyStops),
			r.Elapsed.String(),
			strconv.FormatFloat(r.Rate(), 'f', 1, 64),
		})
	}
	return w.write("throughput.csv", "throughput", header, rows)
}
