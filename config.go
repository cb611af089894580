package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultDevice  = "/dev/input/event0"
	defaultUInput  = "/dev/uinput"
	defaultName    = "Virtual Keyboard"
	defaultLogFile = "/tmp/goGPiKeys.log"
)

// Config holds the process settings. Every key can also be set through a
// GPIKEYS_ environment variable, e.g. GPIKEYS_LOG_FILE.
type Config struct {
	Device  string
	UInput  string
	Name    string
	LogFile string
	Debug   bool
	Grab    bool
}

func loadConfig(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("goGPiKeys", pflag.ContinueOnError)
	fs.String("device", defaultDevice, "gamepad input device")
	fs.String("uinput", defaultUInput, "uinput device used to create the virtual keyboard")
	fs.String("name", defaultName, "name of the virtual keyboard")
	fs.String("log-file", defaultLogFile, "log file")
	fs.Bool("debug", false, "log every input event and d-pad mode change")
	fs.Bool("grab", false, "grab the gamepad so other programs do not see its events")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("GPIKEYS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	return &Config{
		Device:  v.GetString("device"),
		UInput:  v.GetString("uinput"),
		Name:    v.GetString("name"),
		LogFile: v.GetString("log-file"),
		Debug:   v.GetBool("debug"),
		Grab:    v.GetBool("grab"),
	}, nil
}
