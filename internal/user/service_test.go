package user

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const wantOutput = "Created user: User(id=1, username=test, email=test@example.com, age=25)\n" +
	"Username: test\n"

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestCreateDemoUser_Fields(t *testing.T) {
	svc := NewUserService(&bytes.Buffer{}, nil)

	u := svc.CreateDemoUser()

	require.NotNil(t, u)
	assert.Equal(t, int64(1), u.ID())
	assert.Equal(t, "test", u.Username())
	assert.Equal(t, "test@example.com", u.Email())
	assert.Equal(t, 25, u.Age())
	assert.Equal(t, "User(id=1, username=test, email=test@example.com, age=25)", u.String())
}

func TestCreateDemoUser_Output(t *testing.T) {
	var buf bytes.Buffer
	svc := NewUserService(&buf, nil)

	svc.CreateDemoUser()

	assert.Equal(t, wantOutput, buf.String())
	assert.Len(t, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), 2)
}

func TestCreateDemoUser_IndependentResults(t *testing.T) {
	var buf bytes.Buffer
	svc := NewUserService(&buf, nil)

	first := svc.CreateDemoUser()
	second := svc.CreateDemoUser()

	assert.NotSame(t, first, second)
	assert.True(t, first.Equal(second))

	first.SetUsername("changed")
	assert.Equal(t, "test", second.Username())

	assert.Equal(t, wantOutput+wantOutput, buf.String())
}

func TestCreateDemoUser_WriteFailurePanics(t *testing.T) {
	svc := NewUserService(failingWriter{err: errors.New("stdout closed")}, nil)

	assert.PanicsWithError(t, "write demo user: stdout closed", func() {
		svc.CreateDemoUser()
	})
}

func TestCreateDemoUser_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewUserService(&bytes.Buffer{}, zap.New(core).Sugar())
	svc.newInvocationID = func() string { return "inv-1" }

	svc.CreateDemoUser()

	entries := logs.FilterMessage("demo user created").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "inv-1", fields["invocation_id"])

	logged, ok := fields["user"].(map[string]interface{})
	require.True(t, ok, "user should be logged as an object, got %T", fields["user"])
	assert.EqualValues(t, 1, logged["id"])
	assert.Equal(t, "test", logged["username"])
	assert.Equal(t, "test@example.com", logged["email"])
	assert.EqualValues(t, 25, logged["age"])
}

func TestNewUserService_Defaults(t *testing.T) {
	svc := NewUserService(nil, nil)

	assert.NotNil(t, svc.out)
	assert.NotNil(t, svc.logger)
	assert.NotEmpty(t, svc.newInvocationID())
}
