package entity

import "time"

// Géneros aceptados en los datos generales.
const (
	GenderMale   = "MASCULINO"
	GenderFemale = "FEMENINO"
	GenderOther  = "OTRO"
)

// Secciones editables de forma independiente (updateSection del formulario).
const (
	SectionGeneralData               = "general-data"
	SectionBusinessDescription       = "business-description"
	SectionValueProposition          = "value-proposition"
	SectionTeam                      = "team"
	SectionCommunicationChannels     = "communication-channels"
	SectionCommercializationChannels = "commercialization-channels"
	SectionSupplyChain               = "supply-chain"
	SectionKeyPartners               = "key-partners"
	SectionCustomerSegments          = "customer-segments"
)

// GeneralData datos generales del emprendimiento y su representante.
type GeneralData struct {
	ProjectName        string `json:"project_name"`
	Logo               string `json:"logo,omitempty"` // URL, los adjuntos viven fuera del API
	RepresentativeName string `json:"representative_name"`
	CI                 string `json:"ci"`
	Gender             string `json:"gender"`
	Nationality        string `json:"nationality"`
	BirthDate          string `json:"birth_date"`
	Province           string `json:"province"`
	Canton             string `json:"canton"`
	Parish             string `json:"parish"`
	Address            string `json:"address"`
	Email              string `json:"email"`
	ConventionalPhone  string `json:"conventional_phone,omitempty"`
	CellPhone          string `json:"cell_phone"`
	HasRUC             bool   `json:"has_ruc"`
	RUC                string `json:"ruc,omitempty"`
	StartDate          string `json:"start_date"`
}

// TeamMember integrante del equipo emprendedor.
type TeamMember struct {
	Name       string `json:"name"`
	Experience string `json:"experience"`
	Role       string `json:"role"`
}

// Project perfil de plan de negocio de un emprendedor (un usuario puede tener varios).
type Project struct {
	ID                        string
	OwnerID                   string
	GeneralData               GeneralData
	BusinessDescription       string
	ValueProposition          string
	Team                      []TeamMember
	CommunicationChannels     string
	CommercializationChannels string
	SupplyChain               string
	KeyPartners               string
	CustomerSegments          string
	CostStructure             CostStructure
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// Name nombre visible del proyecto.
func (p *Project) Name() string {
	return p.GeneralData.ProjectName
}
