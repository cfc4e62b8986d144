package oid

// OID identifies a sheet job for the duration of an export.
type OID string

const Nil = OID("")

func (o OID) IsNil() bool {
	return string(o) == ""
}

// Short returns the first characters, enough to tell jobs apart in logs.
func (o OID) Short() string {
	if len(o) <= 8 {
		return string(o)
	}
	return string(o)[0:8]
}

// String returns the OID as a string.
func (o OID) String() string {
	return string(o)
}

/* Constructors */

func New() OID {
	return generator.New()
}
