package transaction

// Kind is the display category of a transaction.
type Kind int8

const (
	// KindSet covers every transaction type the service does not name,
	// such as manual balance corrections.
	KindSet Kind = iota
	KindAdded
	KindPurchased
)

// Transaction types sent by the card service.
const (
	TypeSpend = "spend"
	TypeTopUp = "topup"
)

// KindOf maps a card service transaction type onto a Kind.
func KindOf(transactionType string) Kind {
	switch transactionType {
	case TypeSpend:
		return KindPurchased
	case TypeTopUp:
		return KindAdded
	default:
		return KindSet
	}
}

func (k Kind) String() string {
	switch k {
	case KindPurchased:
		return "purchased"
	case KindAdded:
		return "added"
	default:
		return "setted"
	}
}
