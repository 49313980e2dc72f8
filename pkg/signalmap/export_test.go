package signalmap

// BoholTowns re-exposes the unexported seed data to the external test package.
var BoholTowns = boholTowns
