package entity

// Statuts d'une demande d'inscription fournisseur côté back-office.
const (
	ApplicationPending  = "pending"
	ApplicationReview   = "review"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// SupplierApplication représente une demande d'inscription fournisseur
// telle qu'elle apparaît dans le centre d'administration.
type SupplierApplication struct {
	ID        int
	Name      string
	Email     string
	Status    string // pending, review, approved, rejected
	Submitted string // AAAA-MM-JJ
}
