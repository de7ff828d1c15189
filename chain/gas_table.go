package chain

// GasTable stores the gas prices of the precompiled contracts
type GasTable struct {
	Sha256Base    uint64
	Sha256PerWord uint64

	// ModExpMinGas is the floor of the modexp price, zero when there is none
	ModExpMinGas uint64
	// ModExpEIP2565 selects the EIP-2565 multiplication complexity
	ModExpEIP2565 bool

	// RSAVerifyBase is charged on top of the modexp price by the RSA verification precompile
	RSAVerifyBase uint64
}

// GasTableByzantium contains the gas prices for the byzantium phase (EIP-198).
var GasTableByzantium = GasTable{
	Sha256Base:    60,
	Sha256PerWord: 12,
	RSAVerifyBase: 3000,
}

// GasTableBerlin contains the gas prices for the berlin phase (EIP-2565).
var GasTableBerlin = GasTable{
	Sha256Base:    60,
	Sha256PerWord: 12,
	ModExpMinGas:  200,
	ModExpEIP2565: true,
	RSAVerifyBase: 3000,
}
