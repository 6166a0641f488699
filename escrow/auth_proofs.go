package escrow

type (
	InitWalletAuthProof struct {
		_          struct{} `cbor:",toarray"`
		OwnerProof []byte
	}

	CreateChoreAuthProof struct {
		_          struct{} `cbor:",toarray"`
		OwnerProof []byte
	}

	SubmitCompletionAuthProof struct {
		_          struct{} `cbor:",toarray"`
		OwnerProof []byte
	}

	RateAndPayAuthProof struct {
		_          struct{} `cbor:",toarray"`
		OwnerProof []byte
	}

	WithdrawAuthProof struct {
		_          struct{} `cbor:",toarray"`
		OwnerProof []byte
	}

	CancelChoreAuthProof struct {
		_          struct{} `cbor:",toarray"`
		OwnerProof []byte
	}
)
