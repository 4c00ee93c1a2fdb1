package repositories

// NpmPackageManager removes packages with `npm uninstall --save`.
type NpmPackageManager struct{}

// NewNpmPackageManager creates a new NpmPackageManager.
func NewNpmPackageManager() *NpmPackageManager { return &NpmPackageManager{} }

func (it *NpmPackageManager) Name() string     { return "npm" }
func (it *NpmPackageManager) Lockfile() string { return "" }

func (it *NpmPackageManager) UninstallArgs(packages []string) []string {
	return append([]string{"uninstall", "--save"}, packages...)
}

// YarnPackageManager removes packages with `yarn remove`.
type YarnPackageManager struct{}

// NewYarnPackageManager creates a new YarnPackageManager.
func NewYarnPackageManager() *YarnPackageManager { return &YarnPackageManager{} }

func (it *YarnPackageManager) Name() string     { return "yarn" }
func (it *YarnPackageManager) Lockfile() string { return "yarn.lock" }

func (it *YarnPackageManager) UninstallArgs(packages []string) []string {
	return append([]string{"remove"}, packages...)
}

// PnpmPackageManager removes packages with `pnpm remove`.
type PnpmPackageManager struct{}

// NewPnpmPackageManager creates a new PnpmPackageManager.
func NewPnpmPackageManager() *PnpmPackageManager { return &PnpmPackageManager{} }

func (it *PnpmPackageManager) Name() string     { return "pnpm" }
func (it *PnpmPackageManager) Lockfile() string { return "pnpm-lock.yaml" }

func (it *PnpmPackageManager) UninstallArgs(packages []string) []string {
	return append([]string{"remove"}, packages...)
}
