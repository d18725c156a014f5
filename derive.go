package tachyon

// DeriveKey derives a 32-byte key from material using domain=
// DomainKeyDerivation, seed=0, no key (spec §6 "Key derivation").
func DeriveKey(material []byte) [Size]byte {
	return HashWithDomain(material, DomainKeyDerivation)
}
