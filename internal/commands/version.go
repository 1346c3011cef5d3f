package commands

import (
	"log"

	"github.com/pivotal-cf/jhanda"
)

type Version struct {
	logger  *log.Logger
	version string
}

func NewVersion(logger *log.Logger, version string) Version {
	return Version{
		logger:  logger,
		version: version,
	}
}

func (v Version) Execute([]string) error {
	v.logger.Printf("xena-gdc version %s\n", v.version)

	return nil
}

func (v Version) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command prints the xena-gdc release version number.",
		ShortDescription: "prints the xena-gdc release version",
	}
}
