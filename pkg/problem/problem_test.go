package problem

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yesoreyeram/thittam/pkg/types"
)

func TestNewDerivesJobsAndMachines(t *testing.T) {
	ops := []types.Operation{
		types.NewOperation(0, 0, 3),
		types.NewOperation(0, 1, 2),
		types.NewOperation(1, 1, 4),
		types.NewOperation(1, 0, 1),
	}
	p, err := New("two-by-two", ops)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := p.Jobs(); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Jobs() = %v, want [0 1]", got)
	}
	if got := p.Machines(); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Machines() = %v, want [0 1]", got)
	}
	if got := p.JobOps(1); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("JobOps(1) = %v, want [2 3]", got)
	}
}

func TestNewRejectsNegativeDuration(t *testing.T) {
	_, err := New("bad", []types.Operation{types.NewOperation(0, 0, -1)})
	if err == nil {
		t.Fatal("New() accepted a negative duration")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantOps int
	}{
		{
			name:    "basic instance with comments",
			input:   "# a comment\n2 2\n0 3 1 2\n1 4 0 1\n",
			wantOps: 4,
		},
		{
			name:    "blank lines skipped",
			input:   "\n2 1\n0 5\n\n0 7\n",
			wantOps: 2,
		},
		{
			name:    "missing job line",
			input:   "2 2\n0 3 1 2\n",
			wantErr: true,
		},
		{
			name:    "field count mismatch",
			input:   "1 2\n0 3 1\n",
			wantErr: true,
		},
		{
			name:    "machine out of range",
			input:   "1 2\n0 3 5 2\n",
			wantErr: true,
		},
		{
			name:    "non-numeric field",
			input:   "1 1\nx 3\n",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "# only comments\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedInput) {
					t.Fatalf("Parse() error = %v, want ErrMalformedInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(p.Ops()) != tt.wantOps {
				t.Errorf("Parse() yielded %d ops, want %d", len(p.Ops()), tt.wantOps)
			}
		})
	}
}

// TestWriteRoundTrip parses an instance, serialises it and re-parses it;
// the operation lists must be identical.
func TestWriteRoundTrip(t *testing.T) {
	input := "2 3\n0 3 1 2 2 5\n2 4 0 1 1 6\n"
	p, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	q, err := Parse(&buf)
	if err != nil {
		t.Fatalf("re-Parse() error = %v", err)
	}
	if len(p.Ops()) != len(q.Ops()) {
		t.Fatalf("round trip changed op count: %d != %d", len(p.Ops()), len(q.Ops()))
	}
	for i := range p.Ops() {
		if p.Ops()[i] != q.Ops()[i] {
			t.Errorf("op %d changed: %v != %v", i, p.Ops()[i], q.Ops()[i])
		}
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile("testdata/does-not-exist.txt")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("FromFile() error = %v, want ErrFileNotFound", err)
	}
}

func TestRandom(t *testing.T) {
	p, err := Random(4, 3, 42, 10, 50)
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if got := len(p.Ops()); got != 12 {
		t.Fatalf("Random() yielded %d ops, want 12", got)
	}

	// every job visits every machine exactly once
	for _, job := range p.Jobs() {
		seen := make(map[int]bool)
		for _, i := range p.JobOps(job) {
			op := p.Ops()[i]
			if seen[op.Machine] {
				t.Errorf("job %d visits machine %d twice", job, op.Machine)
			}
			seen[op.Machine] = true
			if op.Duration < 10 || op.Duration > 50 {
				t.Errorf("duration %g outside [10, 50]", op.Duration)
			}
		}
	}

	// same seed reproduces the instance
	q, err := Random(4, 3, 42, 10, 50)
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	for i := range p.Ops() {
		if p.Ops()[i] != q.Ops()[i] {
			t.Fatalf("seeded generation is not reproducible at op %d", i)
		}
	}

	if _, err := Random(0, 3, 1, 10, 50); !errors.Is(err, ErrEmptyProblem) {
		t.Errorf("Random(0, ...) error = %v, want ErrEmptyProblem", err)
	}
}
