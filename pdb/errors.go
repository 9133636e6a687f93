package pdb

import "github.com/planopt/numheur/internal/perr"

const component = "pdb"

func errOverflow(msg string) error { return perr.New(perr.Overflow, component, msg) }

func errUnsupported(msg string) error { return perr.New(perr.Unsupported, component, msg) }

func errInvalidArgument(msg string) error { return perr.New(perr.InvalidArgument, component, msg) }
