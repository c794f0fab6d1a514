package render

import (
	"strings"
	"text/template"
)

// document carries the three interpolation points of the export template.
type document struct {
	UUID       string
	Module     string // already entity-escaped
	FormModule string
}

// formModule is the form's client script. It initialises the three
// configuration fields when no value is present. A fixed literal, never
// derived from input and known to contain no characters needing escaping.
const formModule = `&НаКлиенте
Процедура ПриСозданииНаСервере(Отказ, СтандартнаяОбработка)

	// Устанавливаем значения по умолчанию
	Если Объект.АдресСервера = "" Тогда
		Объект.АдресСервера = "http://localhost:9999";
	КонецЕсли;

	Если Объект.РазмерПакета = 0 Тогда
		Объект.РазмерПакета = 50;
	КонецЕсли;

	Если Объект.ИспользоватьПакетнуюВыгрузку = Неопределено Тогда
		Объект.ИспользоватьПакетнуюВыгрузку = Истина;
	КонецЕсли;

КонецПроцедуры`

const documentTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<MetaDataObject xmlns="http://v8.1c.ru/8.3/MDClasses" xmlns:app="http://v8.1c.ru/8.2/managed-application/core" xmlns:cfg="http://v8.1c.ru/8.1/data/enterprise/current-config" xmlns:cmi="http://v8.1c.ru/8.2/managed-application/cmi" xmlns:ent="http://v8.1c.ru/8.1/data/enterprise/current-config" xmlns:lf="http://v8.1c.ru/8.2/managed-application/logform" xmlns:style="http://v8.1c.ru/8.1/data/ui/style" xmlns:sys="http://v8.1c.ru/8.1/data/ui/fonts/system" xmlns:v8="http://v8.1c.ru/8.1/data/core" xmlns:v8ui="http://v8.1c.ru/8.1/data/ui" xmlns:web="http://v8.1c.ru/8.1/data/ui/colors/web" xmlns:win="http://v8.1c.ru/8.1/data/ui/colors/windows" xmlns:xen="http://v8.1c.ru/8.3/xcf/enums" xmlns:xpr="http://v8.1c.ru/8.3/xcf/predef" xmlns:xr="http://v8.1c.ru/8.3/xcf/readable" xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" version="2.12">
  <DataProcessor>
    <uuid>{{.UUID}}</uuid>
    <name>ВыгрузкаДанныхВСервис</name>
    <synonym>
      <key>ru</key>
      <value>Выгрузка данных в сервис нормализации</value>
    </synonym>
    <comment>Обработка для выгрузки данных из 1С в сервис нормализации и анализа через HTTP</comment>
    <module>
      <text><![CDATA[{{.Module}}]]></text>
    </module>
    <forms>
      <form>
        <name>Форма</name>
        <synonym>
          <key>ru</key>
          <value>Форма</value>
        </synonym>
        <module>
          <text><![CDATA[{{.FormModule}}]]></text>
        </module>
      </form>
    </forms>
  </DataProcessor>
</MetaDataObject>`

var tmpl = template.Must(template.New("export").Parse(documentTemplate))

// Document interpolates the processing identifier and the escaped module
// text into the export document. The module text is placed inside a CDATA
// block as-is; no further transformation is applied here.
func Document(uuid, escapedModule string) (string, error) {
	var b strings.Builder
	err := tmpl.Execute(&b, document{
		UUID:       uuid,
		Module:     escapedModule,
		FormModule: formModule,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
