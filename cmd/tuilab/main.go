package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tuilab/core"
	"tuilab/internal/config"
	"tuilab/internal/database"
	"tuilab/internal/preview"
	"tuilab/internal/series"
	"tuilab/internal/session"
	"tuilab/internal/todo"
	"tuilab/tabs"
)

func main() {
	validate := flag.Bool("validate", false, "run non-TUI validation")
	sessionPath := flag.String("session", "", "session database path (overrides config; empty = in-memory)")
	flag.Parse()
	if *validate {
		if err := runValidation(); err != nil {
			fmt.Fprintln(os.Stderr, "validation failed:", err)
			os.Exit(1)
		}
		fmt.Println("validation ok")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *sessionPath != "" {
		cfg.Session.Path = *sessionPath
	}

	db, err := database.Open(cfg.Session.Path)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := session.NewStore(db)
	if err := store.Begin(context.Background()); err != nil {
		log.Fatalf("begin session: %v", err)
	}

	var cache series.Cache
	if cfg.Cache.RedisAddr != "" {
		rc := series.NewRedisCache(cfg.Cache.RedisAddr)
		defer rc.Close()
		cache = rc
	} else {
		cache = series.NewMemoryCache()
	}

	deps := tabs.Deps{
		Config:  cfg,
		Store:   store,
		Todos:   &todo.Service{Store: store},
		Preview: &preview.Service{Dir: cfg.Preview.Dir, Rows: cfg.Preview.Rows},
		Series:  series.NewSource(cfg.Series.Seed, cfg.Series.Days, cache),
	}

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	m := core.NewModel(tabs.Tabs(), keys, core.NewCommandRegistry(nil))
	tabs.ConfigureModel(&m, deps)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
