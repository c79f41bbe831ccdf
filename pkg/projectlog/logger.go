package projectlog

import (
	"os"

	"github.com/priyankahotkar/DevCoach-AI/config"

	"github.com/sirupsen/logrus"
)

func Init() {
	logrus.SetFormatter(&JSONFormatter{})
	level, err := logrus.ParseLevel(config.GetInstance().GetStringOrDefault(config.AppLogLevel, "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	rc := config.GetInstance().GetBool(config.AppLogReportcaller)
	logrus.SetReportCaller(rc)
	logrus.SetOutput(os.Stdout)
}
