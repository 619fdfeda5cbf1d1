/*
Package configuration は、デバイス上のコンポーネント設定を読み書きするパッケージです。
*/
package configuration

import (
	"encoding/xml"

	"github.com/aptpod/devmgmt-go/management"
)

// Appは、設定を管理するデバイスアプリケーションです。
var App = management.Application{Name: "CONF-V1", Version: "1.0"}

const (
	// ResourceConfigurationsは、設定を表すリソース名です。
	ResourceConfigurations = "configurations"

	// ParameterComponentIDは、対象のコンポーネントを指定するパラメータ名です。
	ParameterComponentID = "componentId"
)

// Configurationsは、デバイスのコンポーネント設定の一覧です。
type Configurations struct {
	XMLName        xml.Name                 `xml:"configurations"`
	Configurations []ComponentConfiguration `xml:"configuration"`
}

// Componentは、IDが一致するコンポーネント設定を返却します。
func (c *Configurations) Component(id string) (*ComponentConfiguration, bool) {
	for i := range c.Configurations {
		if c.Configurations[i].ID == id {
			return &c.Configurations[i], true
		}
	}
	return nil, false
}

// ComponentConfigurationは、一つのコンポーネントの設定です。
type ComponentConfiguration struct {
	ID         string     `xml:"id"`
	Properties []Property `xml:"properties>property"`
}

// Propertyは、設定値です。
//
// 配列型のプロパティは複数のValuesを持ちます。
type Property struct {
	Name   string   `xml:"name,attr"`
	Type   string   `xml:"type,attr"`
	Values []string `xml:"value"`
}

// Propertyは、名前が一致するプロパティを返却します。
func (c *ComponentConfiguration) Property(name string) (*Property, bool) {
	for i := range c.Properties {
		if c.Properties[i].Name == name {
			return &c.Properties[i], true
		}
	}
	return nil, false
}
