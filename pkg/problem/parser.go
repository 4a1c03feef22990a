package problem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yesoreyeram/thittam/pkg/types"
)

// FromFile loads a problem from a benchmark-format text file.
//
// The format is line based: lines starting with '#' are comments, the
// first data line holds "nJobs nMachines", and each of the following
// nJobs lines holds the machine/duration pairs of one job in execution
// order: "m1 d1 m2 d2 ...".
func FromFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.name = instanceName(path)
	return p, nil
}

// Parse reads a problem in benchmark text format from r.
func Parse(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no data lines", ErrMalformedInput)
	}

	header, err := parseInts(lines[0])
	if err != nil || len(header) != 2 {
		return nil, fmt.Errorf("%w: header must be 'jobs machines', got %q", ErrMalformedInput, lines[0])
	}
	nJobs, nMachines := header[0], header[1]
	if nJobs < 0 || nMachines < 0 {
		return nil, fmt.Errorf("%w: negative counts in header %q", ErrMalformedInput, lines[0])
	}
	if len(lines)-1 < nJobs {
		return nil, fmt.Errorf("%w: expected %d job lines, got %d", ErrMalformedInput, nJobs, len(lines)-1)
	}

	ops := make([]types.Operation, 0, nJobs*nMachines)
	for j := 0; j < nJobs; j++ {
		fields, err := parseInts(lines[1+j])
		if err != nil {
			return nil, fmt.Errorf("%w: job %d: %v", ErrMalformedInput, j, err)
		}
		if len(fields) != 2*nMachines {
			return nil, fmt.Errorf("%w: job %d: expected %d fields, got %d",
				ErrMalformedInput, j, 2*nMachines, len(fields))
		}
		for k := 0; k < nMachines; k++ {
			machine, duration := fields[2*k], fields[2*k+1]
			if machine < 0 || machine >= nMachines {
				return nil, fmt.Errorf("%w: job %d: machine %d out of range [0, %d)",
					ErrMalformedInput, j, machine, nMachines)
			}
			if duration < 0 {
				return nil, fmt.Errorf("%w: job %d: negative duration %d", ErrMalformedInput, j, duration)
			}
			ops = append(ops, types.NewOperation(j, machine, float64(duration)))
		}
	}

	return New("", ops)
}

// Write serialises the problem in benchmark text format, one line per job
// in ascending job order. For a problem read by Parse, parsing the output
// yields an identical operation list. Non-integer durations are written
// as decimals, which Parse does not accept.
func (p *Problem) Write(w io.Writer) error {
	nJobs, nMachines := p.Scale()
	if _, err := fmt.Fprintf(w, "# %s\n%d %d\n", p.name, nJobs, nMachines); err != nil {
		return err
	}
	for _, job := range p.jobs {
		fields := make([]string, 0, 2*nMachines)
		for _, i := range p.JobOps(job) {
			op := p.ops[i]
			fields = append(fields, strconv.Itoa(op.Machine), strconv.FormatFloat(op.Duration, 'f', -1, 64))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}

func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	values := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", field)
		}
		values[i] = v
	}
	return values, nil
}

func instanceName(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}
