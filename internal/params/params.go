package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// Byte lengths of the BN254 encodings used throughout, matching
	// gnark-crypto's compressed point formats.
	BytesScalar = 32
	BytesG1     = 32
	BytesG2     = 64
)
