package normalize

import "github.com/planopt/numheur/internal/perr"

const component = "normalize"

func errUnsupported(msg string) error { return perr.New(perr.Unsupported, component, msg) }

func errNumeric(msg string) error { return perr.New(perr.NumericError, component, msg) }

func errInternal(msg string) error { return perr.New(perr.Internal, component, msg) }
