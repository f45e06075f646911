package domain

// ModalState is the add/edit investment modal of one account.
// It is exactly one of ModalClosed, ModalAdding or ModalEditing.
type ModalState interface {
	isModalState()
}

// ModalClosed means no entry is being added or edited
type ModalClosed struct{}

// ModalAdding means a new entry is being added to ItemID
type ModalAdding struct {
	ItemID ItemID
}

// ModalEditing means Entry of ItemID is being edited; Entry is the prefill
type ModalEditing struct {
	ItemID ItemID
	Entry  InvestmentEntry
}

func (ModalClosed) isModalState() {}
func (ModalAdding) isModalState() {}
func (ModalEditing) isModalState() {}
