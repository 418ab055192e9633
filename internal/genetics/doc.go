// Package genetics resolves an equine multi-locus genotype, a breed bias
// profile and an age into the displayed coat color, shade and markings.
//
// Resolution runs in a fixed order: base pigment (Extension x Agouti
// epistasis), the dilution cascade (Cream, Dun, Champagne, Silver, Pearl,
// Mushroom as an ordered rule table), pattern overlays (Dominant White
// short-circuit, Leopard Complex, Tobiano, Roan, age-gated Gray), then the
// probabilistic shade and marking draws. All randomness flows through one
// injected Selector so tests can substitute a deterministic stub.
package genetics
