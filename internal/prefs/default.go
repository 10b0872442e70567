package prefs

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultStore struct {
	db *sql.DB
}

const (
	keyDifficulty = "difficulty"
	keyOffset     = "offset"
	keyHazard     = "hazard"
)

func Open(file string) (*DefaultStore, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}

	initStatement := `
	create table if not exists settings
	  (
		  key text not null primary key,
		  value text not null
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create settings table: %w", err)
	}

	return &DefaultStore{db: db}, nil
}

func (s *DefaultStore) Close() error {
	if nil != s.db {
		return s.db.Close()
	}
	return nil
}

func (s *DefaultStore) Save(settings game.Settings) error {
	tx, err := s.db.Begin()
	if nil != err {
		return err
	}
	values := map[string]string{
		keyDifficulty: settings.Difficulty.String(),
		keyOffset:     settings.Offset.String(),
		keyHazard:     strconv.FormatBool(settings.Hazard),
	}
	for key, value := range values {
		if _, err := tx.Exec("insert or replace into settings(key, value) values(?, ?)", key, value); nil != err {
			tx.Rollback()
			return fmt.Errorf("unable to save %v: %w", key, err)
		}
	}
	return tx.Commit()
}

func (s *DefaultStore) Load() (game.Settings, bool, error) {
	settings := game.DefaultSettings()
	rows, err := s.db.Query("select key, value from settings")
	if nil != err {
		return settings, false, err
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); nil != err {
			return settings, false, err
		}
		found = true
		switch key {
		case keyDifficulty:
			d, err := game.ParseDifficulty(value)
			if nil != err {
				return settings, false, err
			}
			settings.Difficulty = d
		case keyOffset:
			offset, err := time.ParseDuration(value)
			if nil != err {
				return settings, false, fmt.Errorf("bad saved offset: %w", err)
			}
			settings.Offset = game.ClampOffset(offset)
		case keyHazard:
			hazard, err := strconv.ParseBool(value)
			if nil != err {
				return settings, false, fmt.Errorf("bad saved hazard flag: %w", err)
			}
			settings.Hazard = hazard
		}
	}
	return settings, found, rows.Err()
}
