package main

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/fitsim/memutils/fit"
)

type variant struct {
	kind  fit.Kind
	eager bool
}

// Single-letter strategy codes: lower case is the lazy variant, upper case the eager one
var variantCodes = map[string]variant{
	"f": {kind: fit.KindFirstFit},
	"F": {kind: fit.KindFirstFit, eager: true},
	"n": {kind: fit.KindNextFit},
	"N": {kind: fit.KindNextFit, eager: true},
	"b": {kind: fit.KindBestFit},
	"B": {kind: fit.KindBestFit, eager: true},
	"w": {kind: fit.KindWorstFit},
	"W": {kind: fit.KindWorstFit, eager: true},
}

func parseVariant(arg string, eager bool) (variant, error) {
	if v, ok := variantCodes[arg]; ok {
		return v, nil
	}

	kind, err := fit.ParseKind(arg)
	if err != nil {
		return variant{}, errors.Wrap(err, "expected a strategy name or one of f F n N b B w W")
	}

	return variant{kind: kind, eager: eager}, nil
}

func allVariants() []variant {
	var variants []variant
	for _, kind := range fit.Kinds() {
		variants = append(variants, variant{kind: kind}, variant{kind: kind, eager: true})
	}

	return variants
}
