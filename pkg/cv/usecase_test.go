package cv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func writeCV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleCV = `John Smith
Senior Backend Engineer at Acme Corp since 2018.
Skilled in Go, PostgreSQL and Kubernetes. john.smith@example.com`

func TestProcessHappyPath(t *testing.T) {
	model := &fakeLLM{reply: "```json\n{\"name\":\"John Smith\",\"contact\":{\"email\":\"john.smith@example.com\"}}\n```"}
	svc := NewService(model, 20, 12000)

	res, err := svc.Process(context.Background(), "resume.txt", writeCV(t, sampleCV))
	require.NoError(t, err)

	assert.Equal(t, "John Smith", res.Record.Name)
	assert.Equal(t, "john.smith@example.com", res.Record.Contact.Email)
	assert.Len(t, res.Record.Skills, len(SkillCategories))
	assert.Contains(t, res.Raw, "```json") // raw is the unmodified completion
	assert.False(t, res.Truncated)
	assert.True(t, strings.Contains(model.prompt, "John Smith"))
}

func TestProcessTextTooShort(t *testing.T) {
	svc := NewService(&fakeLLM{}, 50, 12000)

	_, err := svc.Process(context.Background(), "resume.txt", writeCV(t, "too short"))
	require.ErrorIs(t, err, ErrTextTooShort)
}

func TestProcessUnreadableFile(t *testing.T) {
	svc := NewService(&fakeLLM{}, 50, 12000)

	_, err := svc.Process(context.Background(), "resume.pdf", filepath.Join(t.TempDir(), "missing.pdf"))
	require.ErrorIs(t, err, ErrTextTooShort)
}

func TestProcessGatewayFailure(t *testing.T) {
	svc := NewService(&fakeLLM{err: errors.New("connection refused")}, 20, 12000)

	_, err := svc.Process(context.Background(), "resume.txt", writeCV(t, sampleCV))
	require.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestProcessRecoveryFailureCarriesRaw(t *testing.T) {
	svc := NewService(&fakeLLM{reply: "I cannot help with that."}, 20, 12000)

	res, err := svc.Process(context.Background(), "resume.txt", writeCV(t, sampleCV))
	var rerr *RecoveryError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, NoJSONFound, rerr.Kind)
	assert.Equal(t, "I cannot help with that.", rerr.Raw)
	assert.Equal(t, "I cannot help with that.", res.Raw)
}

func TestProcessTruncatesLongInput(t *testing.T) {
	model := &fakeLLM{reply: `{"name":"x"}`}
	svc := NewService(model, 20, 100)

	long := strings.Repeat("experience with Go services. ", 50)
	res, err := svc.Process(context.Background(), "resume.txt", writeCV(t, long))
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Equal(t, 100, res.CharsUsed)
}
