package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/dispatchhub/pkg/errors"
	"github.com/kart-io/dispatchhub/pkg/target"
)

func TestNew(t *testing.T) {
	req, err := New("sales", "pdf",
		Payload{"period": "2024-01", "sales": []map[string]any{}},
		target.NewEmail("admin@company.com"),
		target.NewDownload("/srv/exports"),
	)
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "sales", req.Kind)
	assert.Equal(t, "pdf", req.Format)
	require.Len(t, req.Targets, 2)
	assert.Equal(t, target.TypeEmail, req.Targets[0].Type)
}

func TestNew_Validation(t *testing.T) {
	payload := Payload{"period": "2024-01"}
	tgt := target.NewEmail("admin@company.com")

	tests := []struct {
		name string
		run  func() (*Request, error)
	}{
		{"empty kind", func() (*Request, error) { return New("", "pdf", payload, tgt) }},
		{"empty format", func() (*Request, error) { return New("sales", "", payload, tgt) }},
		{"nil payload", func() (*Request, error) { return New("sales", "pdf", nil, tgt) }},
		{"no targets", func() (*Request, error) { return New("sales", "pdf", payload) }},
		{"untyped target", func() (*Request, error) {
			return New("sales", "pdf", payload, target.New("", "somewhere"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.run()
			assert.Nil(t, req)
			assert.True(t, errors.HasCode(err, errors.ErrInvalidRequest), "error = %v", err)
		})
	}
}

func TestNew_CopiesInputs(t *testing.T) {
	payload := Payload{"period": "2024-01"}
	targets := []target.Target{target.NewEmail("admin@company.com")}

	req, err := New("sales", "pdf", payload, targets...)
	require.NoError(t, err)

	payload["period"] = "tampered"
	targets[0].Value = "tampered"

	assert.Equal(t, "2024-01", req.Payload["period"])
	assert.Equal(t, "admin@company.com", req.Targets[0].Value)
}

func TestNew_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		req, err := New("sales", "pdf", Payload{}, target.NewEmail("a@b.c"))
		require.NoError(t, err)
		assert.False(t, seen[req.ID], "duplicate request id %s", req.ID)
		seen[req.ID] = true
	}
}
