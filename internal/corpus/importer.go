package corpus

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/careerstu/careerstu/ent"
)

// importBatch caps CreateBulk sizes so a large file cannot build one
// enormous statement.
const importBatch = 500

// ImportJobs reads classified job rows from a headered CSV and inserts
// them as JobRecord rows. Expected columns: link, title, company,
// location, level, skills, riasec_code, riasec_confidence. Extra
// columns are ignored; the primary type is derived from the code.
// Returns the number of rows inserted.
func ImportJobs(ctx context.Context, client *ent.Client, r io.Reader) (int, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1

	cols, err := readHeader(rd, "link", "title")
	if err != nil {
		return 0, err
	}

	var (
		total   int
		pending []*ent.JobRecordCreate
	)
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if err := client.JobRecord.CreateBulk(pending...).Exec(ctx); err != nil {
			return fmt.Errorf("insert job rows: %w", err)
		}
		total += len(pending)
		pending = pending[:0]
		return nil
	}

	for line := 2; ; line++ {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read job row: %w", err)
		}

		link := cols.get(rec, "link")
		title := cols.get(rec, "title")
		if link == "" || title == "" {
			return total, fmt.Errorf("line %d: link and title are required", line)
		}

		code := strings.ToUpper(cols.get(rec, "riasec_code"))
		confidence, err := parseFloat(cols.get(rec, "riasec_confidence"))
		if err != nil {
			return total, fmt.Errorf("line %d: riasec_confidence: %w", line, err)
		}

		primary := ""
		if code != "" {
			primary = code[:1]
		}

		pending = append(pending, client.JobRecord.Create().
			SetLink(link).
			SetTitle(title).
			SetCompany(cols.get(rec, "company")).
			SetLocation(cols.get(rec, "location")).
			SetLevel(cols.get(rec, "level")).
			SetSkills(cols.get(rec, "skills")).
			SetRiasecCode(code).
			SetRiasecConfidence(confidence).
			SetPrimaryType(primary))

		if len(pending) >= importBatch {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}

	return total, flush()
}

// ImportSalaries reads salary reference rows from a headered CSV and
// inserts them as SalaryRecord rows. Expected columns: job_title,
// median_salary, market_demand, supply_demand_ratio, riasec_code,
// recent_postings. Returns the number of rows inserted.
func ImportSalaries(ctx context.Context, client *ent.Client, r io.Reader) (int, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1

	cols, err := readHeader(rd, "job_title")
	if err != nil {
		return 0, err
	}

	var (
		total   int
		pending []*ent.SalaryRecordCreate
	)
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if err := client.SalaryRecord.CreateBulk(pending...).Exec(ctx); err != nil {
			return fmt.Errorf("insert salary rows: %w", err)
		}
		total += len(pending)
		pending = pending[:0]
		return nil
	}

	for line := 2; ; line++ {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read salary row: %w", err)
		}

		title := cols.get(rec, "job_title")
		if title == "" {
			return total, fmt.Errorf("line %d: job_title is required", line)
		}

		salary, err := parseInt(cols.get(rec, "median_salary"))
		if err != nil {
			return total, fmt.Errorf("line %d: median_salary: %w", line, err)
		}
		ratio, err := parseFloat(cols.get(rec, "supply_demand_ratio"))
		if err != nil {
			return total, fmt.Errorf("line %d: supply_demand_ratio: %w", line, err)
		}
		postings, err := parseInt(cols.get(rec, "recent_postings"))
		if err != nil {
			return total, fmt.Errorf("line %d: recent_postings: %w", line, err)
		}

		pending = append(pending, client.SalaryRecord.Create().
			SetJobTitle(title).
			SetMedianSalary(salary).
			SetMarketDemand(cols.get(rec, "market_demand")).
			SetSupplyDemandRatio(ratio).
			SetRiasecCode(strings.ToUpper(cols.get(rec, "riasec_code"))).
			SetRecentPostings(postings))

		if len(pending) >= importBatch {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}

	return total, flush()
}

// columnIndex maps lowercased header names to field positions.
type columnIndex map[string]int

func readHeader(rd *csv.Reader, required ...string) (columnIndex, error) {
	header, err := rd.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(columnIndex, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

func (c columnIndex) get(rec []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
