package genetics

// BasePigment is the pigment ground every later naming rule builds on.
type BasePigment string

const (
	Chestnut BasePigment = "Chestnut"
	Black    BasePigment = "Black"
	Bay      BasePigment = "Bay"
)

// resolveBasePigment applies Extension x Agouti epistasis.
//
// Homozygous-recessive Extension (e/e) silences Agouti entirely: the horse
// cannot lay down black pigment, so it is Chestnut no matter what Agouti
// carries. Otherwise Agouti decides where black goes: a/a leaves it uniform
// (Black); any dominant A restricts it to the points (Bay).
func resolveBasePigment(a activeLoci) BasePigment {
	if a.extensionRecessive {
		return Chestnut
	}
	if a.agoutiRecessive {
		return Black
	}
	return Bay
}
