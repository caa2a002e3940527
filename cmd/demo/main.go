package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/ovaphlow/pitchfork/service-demo-user/internal/user"
	"github.com/ovaphlow/pitchfork/service-demo-user/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	// this is best-effort: if no .env exists, continue (use defaults or real env)
	_ = godotenv.Load()

	// init logger
	lg, closeLog, err := utilities.Init(utilities.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	defer lg.Sync()

	sugar := lg.Sugar()
	sugar.Info("starting service-demo-user")

	svc := user.NewUserService(os.Stdout, sugar)
	u := svc.CreateDemoUser()

	sugar.Infow("goodbye", "user_id", u.ID())
}
