package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithField("module", "simtool").WithError(err).Error("command failed")
		os.Exit(1)
	}
}
