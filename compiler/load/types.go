package load

import (
	"strings"

	"ariga.io/atlas/sql/postgres"
	"ariga.io/atlas/sql/schema"

	"github.com/syssam/exposedgen/catalog"
)

// DataType classifies an atlas column type into the catalog's generic
// native types. The vendor name is always lower case and carries no
// arguments.
func DataType(ct *schema.ColumnType) catalog.DataType {
	if ct == nil {
		return catalog.DataType{Native: catalog.NativeOther}
	}
	dt := catalog.DataType{Raw: ct.Raw}
	switch t := ct.Type.(type) {
	case *schema.IntegerType:
		dt.Name = vendorName(t.T, ct.Raw)
		dt.Native = integerNative(dt.Name, t.Unsigned)
	case *postgres.SerialType:
		switch strings.ToLower(t.T) {
		case "bigserial", "serial8":
			dt.Name, dt.Native = "bigint", catalog.NativeLong
		case "smallserial", "serial2":
			dt.Name, dt.Native = "smallint", catalog.NativeInteger
		default:
			dt.Name, dt.Native = "integer", catalog.NativeInteger
		}
	case *schema.BoolType:
		dt.Name, dt.Native = vendorName(t.T, ct.Raw), catalog.NativeBoolean
	case *schema.DecimalType:
		dt.Name, dt.Native = vendorName(t.T, ct.Raw), catalog.NativeDecimal
		if t.Precision > 0 {
			dt.Size, dt.Scale = catalog.IntPtr(t.Precision), catalog.IntPtr(t.Scale)
		}
	case *schema.FloatType:
		dt.Name = vendorName(t.T, ct.Raw)
		dt.Native = floatNative(dt.Name, t.Precision)
	case *schema.StringType:
		dt.Name, dt.Native = vendorName(t.T, ct.Raw), catalog.NativeString
		if dt.Name == "clob" {
			dt.Native = catalog.NativeClob
		}
		if t.Size > 0 {
			dt.Size = catalog.IntPtr(t.Size)
		}
	case *schema.BinaryType:
		dt.Name, dt.Native = vendorName(t.T, ct.Raw), catalog.NativeBytes
		if strings.HasSuffix(dt.Name, "blob") {
			dt.Native = catalog.NativeBlob
		}
		if t.Size != nil && *t.Size > 0 {
			dt.Size = catalog.IntPtr(*t.Size)
		}
	case *schema.TimeType:
		dt.Name = vendorName(t.T, ct.Raw)
		dt.Native = timeNative(dt.Name)
	case *schema.UUIDType:
		dt.Name, dt.Native = vendorName(t.T, ct.Raw), catalog.NativeUUID
	case *schema.EnumType:
		// MySQL reports inline enums as character data; other databases
		// name the enum type.
		if strings.EqualFold(t.T, "enum") || t.T == "" {
			dt.Name, dt.Native = "enum", catalog.NativeString
		} else {
			dt.Name, dt.Native = strings.ToLower(t.T), catalog.NativeOther
		}
	case *schema.JSONType:
		dt.Name, dt.Native = vendorName(t.T, ct.Raw), catalog.NativeOther
	case *postgres.UserDefinedType:
		dt.Name, dt.Native = vendorName(t.T, ct.Raw), catalog.NativeOther
	default:
		dt.Name, dt.Native = vendorName("", ct.Raw), catalog.NativeOther
	}
	return dt
}

func integerNative(name string, unsigned bool) catalog.NativeType {
	switch name {
	case "bigint", "int8":
		return catalog.NativeLong
	case "int", "integer", "mediumint", "int4":
		if unsigned {
			return catalog.NativeLong
		}
	}
	return catalog.NativeInteger
}

func floatNative(name string, precision int) catalog.NativeType {
	switch name {
	case "real", "float4":
		return catalog.NativeFloat
	case "float":
		if precision <= 24 {
			return catalog.NativeFloat
		}
	}
	return catalog.NativeDouble
}

func timeNative(name string) catalog.NativeType {
	switch {
	case name == "date":
		return catalog.NativeDate
	case strings.HasPrefix(name, "timestamp"), name == "datetime":
		return catalog.NativeTimestamp
	case strings.HasPrefix(name, "time"):
		return catalog.NativeTime
	}
	return catalog.NativeOther
}

// vendorName returns the lower-case type name. If atlas did not report
// one, it is derived from the raw spelling by dropping arguments.
func vendorName(name, raw string) string {
	if name == "" {
		name = raw
	}
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(strings.TrimSpace(name))
}
