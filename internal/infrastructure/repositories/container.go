package repositories

import (
	domainRepos "github.com/rios0rios0/depcheck/internal/domain/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register package manager registry with all supported managers
	if err := container.Provide(func() *PackageManagerRegistry {
		reg := NewPackageManagerRegistry()
		reg.Register(NewPnpmPackageManager())
		reg.Register(NewYarnPackageManager())
		reg.Register(NewNpmPackageManager())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(NewLocalFileSystemRepository); err != nil {
		return err
	}
	if err := container.Provide(NewPackageJSONManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(NewExecCommandRunnerRepository); err != nil {
		return err
	}
	if err := container.Provide(NewStdinPrompterRepository); err != nil {
		return err
	}
	if err := container.Provide(NewGitWorkingTreeRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *PackageManagerRegistry) domainRepos.PackageManagerResolver {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *LocalFileSystemRepository) domainRepos.FileSystemRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *PackageJSONManifestRepository) domainRepos.ManifestRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ExecCommandRunnerRepository) domainRepos.CommandRunnerRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *StdinPrompterRepository) domainRepos.PrompterRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *GitWorkingTreeRepository) domainRepos.WorkingTreeRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
