package dto

// LoginRequest entrée pour la connexion. Les deux champs non vides sont
// vérifiés par le handler, pas par le service (sémantique du mock).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrée pour l'inscription. Les champs varient selon le rôle :
// un admin remplit email/name/password, un fournisseur soumet le formulaire
// complet (les champs d'entreprise priment alors sur email/name).
type RegisterRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword"`
	Name            string `json:"name" validate:"omitempty,max=200"`
	Role            string `json:"role" validate:"omitempty,oneof=admin supplier"`

	// Formulaire d'inscription fournisseur (tous optionnels côté service)
	CompanyLegalName      string   `json:"companyLegalName"`
	TradeName             string   `json:"tradeName"`
	BusinessType          string   `json:"businessType"`
	YearEstablished       string   `json:"yearEstablished"`
	CommercialRegNumber   string   `json:"commercialRegNumber"`
	TaxIdentification     string   `json:"taxIdentificationNumber"`
	AgriculturalPermit    string   `json:"agriculturalPermitNumber"`
	PhytosanitaryCert     string   `json:"phytosanitaryCertNumber"`
	OrganicCertification  string   `json:"organicCertification"`
	ContactEmail          string   `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone          string   `json:"contactPhone"`
	BusinessAddress       string   `json:"businessAddress"`
	ServiceAreas          string   `json:"serviceAreas"`
	ProductCategories     []string `json:"productCategories"`
	AcceptTerms           bool     `json:"acceptTerms"`
	AcceptDataProcessing  bool     `json:"acceptDataProcessing"`
}

// IdentityResponse sortie d'une identité (forme du slot durable).
type IdentityResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName,omitempty"`
	Status      string `json:"status,omitempty"`
}

// LoginResponse sortie de connexion.
type LoginResponse struct {
	User IdentityResponse `json:"user"`
}

// RegisterResponse sortie d'inscription. LoggedIn distingue l'admin
// (connecté immédiatement) du fournisseur (en attente d'approbation).
type RegisterResponse struct {
	User     IdentityResponse `json:"user"`
	LoggedIn bool             `json:"loggedIn"`
}
