package specialty

import "github.com/patinaomi/sprint-3-devops/internal/platform/patch"

// Specialty is a dental specialty such as orthodontics or endodontics.
type Specialty struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

type Request struct {
	Name string `json:"nome" validate:"required,max=100"`
}

type Patch struct {
	Name *string `json:"nome" validate:"omitempty,max=100"`
}

func (p *Patch) Apply(s *Specialty) {
	patch.Set(&s.Name, p.Name)
}

func NewSpecialty(req *Request) *Specialty {
	return &Specialty{Name: req.Name}
}
