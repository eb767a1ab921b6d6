package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/alog"
	"github.com/iseif/devbelt/cmd"
	cheatsheet "github.com/iseif/devbelt/contexts/cheatsheet/init"
	codec "github.com/iseif/devbelt/contexts/codec/init"
	crypto "github.com/iseif/devbelt/contexts/crypto/init"
	schedule "github.com/iseif/devbelt/contexts/schedule/init"
	text "github.com/iseif/devbelt/contexts/text/init"
	web "github.com/iseif/devbelt/contexts/web/init"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	conf, err := loadConfig()
	if err != nil {
		cmd.PrintError(os.Stderr, err)

		return 1
	}

	di, err := devbelt.InitialiseDefaultDependencies(ctx, conf)
	if err != nil {
		cmd.PrintError(os.Stderr, err)

		return 1
	}

	//
	// load and initialise all tools
	if _, err := codec.NewCodecContext(di); err != nil {
		cmd.PrintError(os.Stderr, err)

		return 1
	}

	if _, err := crypto.NewCryptoContext(di); err != nil {
		cmd.PrintError(os.Stderr, err)

		return 1
	}

	if _, err := text.NewTextContext(di); err != nil {
		cmd.PrintError(os.Stderr, err)

		return 1
	}

	webContext, err := web.NewWebContext(di)
	if err != nil {
		cmd.PrintError(os.Stderr, err)

		return 1
	}

	defer func() {
		if err := webContext.Shutdown(ctx); err != nil {
			di.Logger.InfoContext(ctx, "could not shutdown web context", alog.Error(err))
		}
	}()

	if _, err := schedule.NewScheduleContext(di); err != nil {
		cmd.PrintError(os.Stderr, err)

		return 1
	}

	if _, err := cheatsheet.NewCheatsheetContext(di); err != nil {
		cmd.PrintError(os.Stderr, err)

		return 1
	}

	return cmd.Execute(di.RootCmd)
}

// loadConfig reads devbelt.yaml from the working directory or the user's config directory, if it exists.
// Environment variables prefixed with DEVBELT_ overwrite the file.
func loadConfig() (*devbelt.Config, error) {
	vip := devbelt.DefaultViper()
	vip.SetConfigName("devbelt")
	vip.SetConfigType("yaml")
	vip.AddConfigPath(".")

	if dir, err := os.UserConfigDir(); err == nil {
		vip.AddConfigPath(filepath.Join(dir, "devbelt"))
	}

	if err := vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	conf := &devbelt.Config{}
	if err := vip.Unmarshal(conf); err != nil {
		return nil, err //nolint:wrapcheck // the error names the config problem
	}

	return conf, nil
}
