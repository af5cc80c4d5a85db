package common

type Module string

const (
	ModuleForge Module = "forge"
)

func (m Module) String() string {
	return string(m)
}
