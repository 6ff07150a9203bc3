// Package sqlite implementa el almacén embebido de productos sobre un archivo SQLite
// (GORM + driver puro Go, sin cgo).
package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/inventario/pkg/logger"
)

// schema es compatible con los archivos inventario.db existentes.
const schema = `
CREATE TABLE IF NOT EXISTS productos (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre      TEXT NOT NULL,
	descripcion TEXT,
	cantidad    INTEGER NOT NULL CHECK(cantidad >= 0),
	precio      REAL NOT NULL CHECK(precio >= 0),
	categoria   TEXT
)`

// Open abre (o crea) el archivo SQLite en path y garantiza la tabla productos.
// Es idempotente entre ejecuciones. La conexión es única y dura todo el proceso.
func Open(ctx context.Context, path string, log *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtener conexión sqlite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	if err := db.WithContext(ctx).Exec(schema).Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("crear tabla productos: %w", err)
	}
	return db, nil
}

// gormWriter envía las trazas de GORM al logger de la aplicación.
type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debug().Str("component", "gorm").Msgf(format, args...)
}

func newGormLogger(log *logger.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if log.Zerolog().GetLevel() <= zerolog.DebugLevel {
		level = gormlogger.Info
	}
	return gormlogger.New(gormWriter{log: log}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
