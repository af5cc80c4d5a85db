package forge

import "github.com/gaze-network/orb-forge/common"

const (
	Version = "v0.1.0"

	ModuleName = common.ModuleForge
)
