package config

import (
	"flag"
	"fmt"
	"net"
	"regexp"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string
	DBUrl      string
	StaticDir  string
	Debug      bool
	MailDryRun bool

	Mail     Mail
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Mail holds the outbound SMTP settings. Credentials are not checked here:
// a missing value only shows up when the first message fails to send.
type Mail struct {
	Server     string `env:"MAIL_SERVER" envDefault:"smtp.gmail.com"`
	Port       int    `env:"MAIL_PORT" envDefault:"587"`
	Username   string `env:"EMAIL_USER"`
	Password   string `env:"EMAIL_PASSWORD"`
	AdminEmail string `env:"ADMIN_EMAIL"`
}

// Load reads the optional .env file, the process environment, and the
// command line flags, in that order.
func Load(args []string) (cfg Config, err error) {
	// without a .env file the OS environment is used as is
	_ = godotenv.Load()

	if err = env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	err = parseFlags(&cfg, args)
	return
}

func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("hvac-backend", flag.ContinueOnError)

	var host string
	fs.StringVar(&host, "host", "0.0.0.0", "listen host name")
	var port uint
	fs.UintVar(&port, "port", 5000, "listen port number")
	fs.StringVar(&cfg.DBUrl, "db-url", "hvac.db", "path to SQLite3 DB file")
	fs.StringVar(&cfg.StaticDir, "static-dir", "", "directory of the built frontend, not served when empty")
	fs.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	fs.BoolVar(&cfg.MailDryRun, "mail-dry-run", false, "log notifications instead of sending them")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	return nil
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
