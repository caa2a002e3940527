package user

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ovaphlow/pitchfork/service-demo-user/internal/user/entity"
	"github.com/ovaphlow/pitchfork/service-demo-user/pkg/utilities"
)

// demo values written into every user built by CreateDemoUser.
const (
	demoID       int64 = 1
	demoUsername       = "test"
	demoEmail          = "test@example.com"
	demoAge            = 25
)

// UserService builds demo users and reports them on its writer.
type UserService struct {
	out    io.Writer
	logger *zap.SugaredLogger
	// newInvocationID tags each CreateDemoUser call in the logs.
	newInvocationID func() string
}

// NewUserService returns a service writing to out (os.Stdout when nil).
// A nil logger disables logging.
func NewUserService(out io.Writer, logger *zap.SugaredLogger) *UserService {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &UserService{out: out, logger: logger, newInvocationID: utilities.NewSnowflakeID}
}

// CreateDemoUser builds a fresh user holding the demo values, prints its
// rendering and username, and returns it.
//
// A failing writer is not recoverable here and panics.
func (s *UserService) CreateDemoUser() *entity.User {
	invocationID := s.newInvocationID()

	u := &entity.User{}
	u.SetID(demoID)
	u.SetUsername(demoUsername)
	u.SetEmail(demoEmail)
	u.SetAge(demoAge)

	if _, err := fmt.Fprintf(s.out, "Created user: %s\n", u.String()); err != nil {
		panic(fmt.Errorf("write demo user: %w", err))
	}
	if _, err := fmt.Fprintf(s.out, "Username: %s\n", u.Username()); err != nil {
		panic(fmt.Errorf("write demo user: %w", err))
	}

	s.logger.Debugw("demo user created", "invocation_id", invocationID, "user", u)
	return u
}
