package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeNotFound, "sample table missing"),
			want: "[NOT_FOUND] sample table missing",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeQuery, "v$archived_log scan failed", stderrors.New("ORA-00942")),
			want: "[QUERY] v$archived_log scan failed: ORA-00942",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeConnection, "cannot reach source database", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}

	var structured *StructuredError
	if !stderrors.As(err, &structured) {
		t.Fatal("expected errors.As to match *StructuredError")
	}
	if structured.Code != ErrCodeConnection {
		t.Errorf("code = %s, want %s", structured.Code, ErrCodeConnection)
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeInvalidSnapshot, "collection too short", map[string]any{
		"hours": 0.5,
	})

	if err.Context["hours"] != 0.5 {
		t.Errorf("context hours = %v, want 0.5", err.Context["hours"])
	}
	if !strings.Contains(err.Error(), "INVALID_SNAPSHOT") {
		t.Errorf("Error() = %q, want code in message", err.Error())
	}
}
