// Package database предоставляет модели данных и репозиторий журнала
// браузерных сессий в PostgreSQL. Использует GORM с prepared statements.
package database

import "time"

// SessionRecord — одна запущенная браузерная сессия.
// Статусы: running, closed, failed.
type SessionRecord struct {
	ID        uint       `gorm:"primaryKey"`
	Headless  bool       `gorm:"not null"`                                    // Режим без окна
	UserAgent string     `gorm:"type:text"`                                   // User-agent сессии
	Status    string     `gorm:"type:varchar(32);not null;default:'running'"` // Статус сессии
	StartedAt time.Time  `gorm:"autoCreateTime"`
	ClosedAt  *time.Time // Время закрытия (если закрыта)
}

// ActionRecord — один вызов хелпера внутри сессии.
type ActionRecord struct {
	ID             uint      `gorm:"primaryKey"`
	SessionID      uint      `gorm:"index;not null"`            // ID сессии
	Action         string    `gorm:"type:varchar(64);not null"` // Тип действия (navigate, type, select...)
	Selector       string    `gorm:"type:text"`                 // Селектор элемента (если применимо)
	Detail         string    `gorm:"type:text"`                 // Аргумент действия (URL, текст, индекс окна)
	Success        bool      `gorm:"not null"`
	Error          string    `gorm:"type:text"` // Текст ошибки при неуспехе
	ScreenshotPath string    `gorm:"type:text"` // Путь к скриншоту (если есть)
	DurationMs     int64     // Длительность вызова
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
