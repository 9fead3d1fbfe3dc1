package migrations

import "embed"

// FS SQL миграции сервиса расписания (формат golang-migrate: NNNNNN_name.up/down.sql)
//
//go:embed *.sql
var FS embed.FS
