package service

import "github.com/samber/lo"

// DefaultSampleSize is how many log lines one idle /logs call returns.
const DefaultSampleSize = 3

var sampleLogs = []string{
	"User login successful - 2024-01-15 10:30:45",
	"Database query executed - 2024-01-15 10:31:12",
	"API request processed - 2024-01-15 10:32:01",
	"File upload completed - 2024-01-15 10:33:25",
	"Cache miss detected - 2024-01-15 10:34:18",
	"Email sent successfully - 2024-01-15 10:35:42",
	"Payment processed - 2024-01-15 10:36:55",
	"Backup completed - 2024-01-15 10:37:33",
	"Security scan finished - 2024-01-15 10:38:47",
	"System maintenance started - 2024-01-15 10:39:21",
	"User logout - 2024-01-15 10:40:15",
	"Data export completed - 2024-01-15 10:41:08",
}

// Catalog returns a copy of the canned log lines.
func Catalog() []string {
	return append([]string(nil), sampleLogs...)
}

// LogSampler draws distinct entries from a fixed catalog.
type LogSampler struct {
	catalog []string
	size    int
}

func NewLogSampler(catalog []string, size int) *LogSampler {
	if size <= 0 || size > len(catalog) {
		size = len(catalog)
	}
	return &LogSampler{catalog: catalog, size: size}
}

func NewDefaultLogSampler() *LogSampler {
	return NewLogSampler(Catalog(), DefaultSampleSize)
}

// Sample returns entries drawn without replacement, in draw order.
func (s *LogSampler) Sample() []string {
	return lo.Samples(s.catalog, s.size)
}
