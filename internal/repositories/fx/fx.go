package fx

import (
	"go.uber.org/fx"

	"github.com/Alexandru2223/postpilot/internal/repositories/profile"
	"github.com/Alexandru2223/postpilot/internal/repositories/template"
)

var Module = fx.Options(
	profile.Module,
	template.Module,
)
