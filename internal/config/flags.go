package config

import "flag"

func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("blog", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "HTTP bind address")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "sqlite database path")
	fs.StringVar(&cfg.SessionSecret, "s", cfg.SessionSecret, "session cookie signing secret")
	fs.DurationVar(&cfg.SessionMaxAge, "t", cfg.SessionMaxAge, "session lifetime")
	fs.StringVar(&cfg.UploadDir, "u", cfg.UploadDir, "upload directory")
	fs.Parse(args)
}
