package ports

import "go.trai.ch/tsprops/internal/core/domain"

// DataAccess reads and writes raw property values of stored objects.
//
//go:generate go run go.uber.org/mock/mockgen -source=data_access.go -destination=mocks/mock_data_access.go -package=mocks
type DataAccess interface {
	// TimeProp returns the SilTime value stored in the given field.
	TimeProp(obj domain.ObjectID, field domain.FieldID) (int64, error)

	// SetTime stores a SilTime value in the given field.
	SetTime(obj domain.ObjectID, field domain.FieldID, silTime int64) error

	// PropsProp returns the raw text property content stored in the given field.
	PropsProp(obj domain.ObjectID, field domain.FieldID) (domain.RawProps, error)

	// SetPropsProp stores raw text property content in the given field.
	SetPropsProp(obj domain.ObjectID, field domain.FieldID, props domain.RawProps) error
}
