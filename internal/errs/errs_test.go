package errs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	errA = errors.New("error a")
	errB = errors.New("error b")
)

func TestErrors_Error(t *testing.T) {
	var tests = []struct {
		name  string
		input Errors
		want  string
	}{
		{
			name:  "single error",
			input: Errors{errA},
			want:  "error a",
		},
		{
			name:  "multiple errors",
			input: Errors{errA, errB},
			want:  "error a\nerror b",
		},
		{
			name:  "no errors",
			input: Errors{},
			want:  "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.input.Error()

			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Error() = unexpected result (-want +got)\n%s\n", diff)
			}
		})
	}
}

func TestErrors_Append(t *testing.T) {
	var e Errors
	e.Append(errA, nil, errB)

	if len(e) != 2 {
		t.Errorf("Append() = unexpected result, want: %d errors, got: %d\n", 2, len(e))
	}
}

func TestErrors_Is(t *testing.T) {
	err := Errors{errA, errB}.ErrorOrNil()

	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("errors.Is() = unexpected result, want contained errors to match\n")
	}
}

func TestErrors_ErrorOrNil(t *testing.T) {
	if err := (Errors{}).ErrorOrNil(); err != nil {
		t.Errorf("ErrorOrNil() = unexpected result, want: nil, got: %v\n", err)
	}
	if err := (Errors{errA}).ErrorOrNil(); err == nil {
		t.Errorf("ErrorOrNil() = unexpected result, want: error, got: nil\n")
	}
}
