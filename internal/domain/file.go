package domain

import "time"

type FileRecord struct {
	Path    string
	Type    string
	ModTime time.Time
}
