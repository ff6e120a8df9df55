package ports

import (
	"datalens/domain/dataset"
)

// RowReader turns an external tabular source into normalized rows
type RowReader interface {
	Read() ([]dataset.Row, error)
}
