package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/unitconv-cli/unitconv/key"
)

func TestValidateValue(t *testing.T) {
	Convey("Given string config keys with a closed set of values", t, func() {
		Convey("Known values are accepted", func() {
			So(validateValue(key.ThemeMode, "dark"), ShouldBeNil)
			So(validateValue(key.TUIDefaultCategory, "temperature"), ShouldBeNil)
			So(validateValue(key.IconsVariant, "nerd"), ShouldBeNil)
		})

		Convey("Unknown values are rejected", func() {
			So(validateValue(key.ThemeMode, "sepia"), ShouldNotBeNil)
			So(validateValue(key.TUIDefaultCategory, "Volume"), ShouldNotBeNil)
			So(validateValue(key.IconsVariant, "ascii"), ShouldNotBeNil)
		})

		Convey("Free-form keys are not checked", func() {
			So(validateValue(key.ServeAddr, "127.0.0.1:9000"), ShouldBeNil)
		})
	})
}

func TestCompletion(t *testing.T) {
	Convey("Category completion matches prefixes ignoring case", t, func() {
		names, _ := completionCategories(rootCmd, nil, "te")
		So(names, ShouldResemble, []string{"Temperature"})
	})

	Convey("Unit completion without a category searches every category", t, func() {
		names, _ := completionUnits(convertCmd, nil, "kilo")
		So(names, ShouldContain, "Kilometer")
		So(names, ShouldContain, "Kilogram")
	})

	Convey("Unit completion honours --category", t, func() {
		cmd := convertCmd
		So(cmd.Flags().Set("category", "Weight"), ShouldBeNil)
		defer func() { _ = cmd.Flags().Set("category", "") }()

		names, _ := completionUnits(cmd, nil, "kilo")
		So(names, ShouldContain, "Kilogram")
		So(names, ShouldNotContain, "Kilometer")
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("An unknown config key suggests the closest one", t, func() {
		err := errUnknownKey("theme.mod")
		So(err.Error(), ShouldContainSubstring, key.ThemeMode)
	})
}

func TestBuildInfo(t *testing.T) {
	Convey("Build info counts the unit tables", t, func() {
		info := currentBuildInfo()
		So(info.App, ShouldEqual, "unitconv")
		So(info.Categories, ShouldEqual, 4)
		So(info.Units, ShouldEqual, 21)
	})
}
