package maritalstatus

import "github.com/patinaomi/sprint-3-devops/internal/platform/patch"

// MaritalStatus is a lookup value referenced by intake forms
// ("Solteiro(a)", "Casado(a)", ...).
type MaritalStatus struct {
	ID          string `json:"id"`
	Description string `json:"descricao"`
}

type Request struct {
	Description string `json:"descricao" validate:"required,max=100"`
}

type Patch struct {
	Description *string `json:"descricao" validate:"omitempty,max=100"`
}

func (p *Patch) Apply(m *MaritalStatus) {
	patch.Set(&m.Description, p.Description)
}

func NewMaritalStatus(req *Request) *MaritalStatus {
	return &MaritalStatus{Description: req.Description}
}
