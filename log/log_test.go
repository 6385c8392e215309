package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/unitconv-cli/unitconv/filesystem"
	"github.com/unitconv-cli/unitconv/key"
	"github.com/unitconv-cli/unitconv/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging configuration", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsJson, false)
			_ = Setup()
		})

		Convey("Disabled logging discards everything", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			Info("nothing")
			So(logger.Out, ShouldNotBeNil)
		})

		Convey("Enabled logging writes JSON lines to today's file", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsJson, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)
			So(logger.GetLevel(), ShouldEqual, logrus.DebugLevel)

			WithFields(logrus.Fields{"category": "Length"}).Info("converted")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			content := string(lo.Must(filesystem.API().ReadFile(path)))
			So(strings.Contains(content, `"category":"Length"`), ShouldBeTrue)
		})

		Convey("An unknown level falls back to info", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "chatty")
			So(Setup(), ShouldBeNil)
			So(logger.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})
}
