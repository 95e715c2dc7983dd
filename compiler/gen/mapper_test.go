package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/exposedgen/catalog"
)

func mapOne(t *testing.T, cfg *Config, col *catalog.Column) *ColumnInfo {
	t.Helper()
	newCatalog(table("t", nil, col))
	info, err := NewMapper(cfg, nil).Map(col)
	require.NoError(t, err)
	return info
}

func TestMapBuiltinDispatch(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		native   catalog.NativeType
		kind     Kind
		accessor string
		typ      string
	}{
		{"tinyint", "tinyint", catalog.NativeInteger, KindByte, "byte", "Byte"},
		{"smallint", "smallint", catalog.NativeInteger, KindShort, "short", "Short"},
		{"int2", "int2", catalog.NativeInteger, KindShort, "short", "Short"},
		{"int8", "int8", catalog.NativeInteger, KindLong, "long", "Long"},
		{"integer", "integer", catalog.NativeInteger, KindInt, "integer", "Int"},
		{"mediumint", "mediumint", catalog.NativeInteger, KindInt, "integer", "Int"},
		{"decimal in double family", "decimal", catalog.NativeDouble, KindDecimal, "decimal", "BigDecimal"},
		{"numeric in double family", "numeric", catalog.NativeDouble, KindDecimal, "decimal", "BigDecimal"},
		{"double", "double precision", catalog.NativeDouble, KindDouble, "double", "Double"},
		{"varchar", "varchar", catalog.NativeString, KindString, "varchar", "String"},
		{"character varying", "character varying", catalog.NativeString, KindString, "varchar", "String"},
		{"char", "char", catalog.NativeString, KindString, "char", "String"},
		{"bpchar", "bpchar", catalog.NativeString, KindString, "char", "String"},
		{"text", "text", catalog.NativeString, KindString, "text", "String"},
		{"string datetime", "datetime", catalog.NativeString, KindDateTime, "datetime", "LocalDateTime"},
		{"string date", "date", catalog.NativeString, KindDate, "date", "LocalDate"},
		{"string binary", "binary", catalog.NativeString, KindBytes, "binary", "ByteArray"},
		{"string bytea", "bytea", catalog.NativeString, KindBytes, "binary", "ByteArray"},
		{"single", "single", catalog.NativeString, KindFloat, "float", "Float"},
		{"long", "bigint", catalog.NativeLong, KindLong, "long", "Long"},
		{"decimal", "decimal", catalog.NativeDecimal, KindDecimal, "decimal", "BigDecimal"},
		{"float", "real", catalog.NativeFloat, KindFloat, "float", "Float"},
		{"boolean", "boolean", catalog.NativeBoolean, KindBool, "bool", "Boolean"},
		{"clob", "clob", catalog.NativeClob, KindString, "text", "String"},
		{"blob", "blob", catalog.NativeBlob, KindBlob, "blob", "ExposedBlob"},
		{"uuid", "uuid", catalog.NativeUUID, KindUUID, "uuid", "UUID"},
		{"date", "date", catalog.NativeDate, KindDate, "date", "LocalDate"},
		{"timestamp", "timestamp", catalog.NativeTimestamp, KindDateTime, "datetime", "LocalDateTime"},
		{"uuid fallback", "uuid", catalog.NativeOther, KindUUID, "uuid", "UUID"},
		{"binary fallback", "varbinary", catalog.NativeBytes, KindBytes, "binary", "ByteArray"},
		{"bytea fallback", "bytea", catalog.NativeOther, KindBytes, "binary", "ByteArray"},
	}
	cfg := MustNewConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := mapOne(t, cfg, column("c", tt.typeName, tt.native))

			assert.Equal(t, tt.kind, info.Kind)
			assert.Equal(t, tt.accessor, info.Accessor.Name)
			assert.Equal(t, tt.typ, info.Type.Name)
			assert.False(t, info.Custom)
		})
	}
}

func TestMapUnmappable(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		native   catalog.NativeType
	}{
		{"unknown enum label", "mood", catalog.NativeOther},
		{"string family without match", "enum", catalog.NativeString},
		{"native time", "time", catalog.NativeTime},
		{"json", "jsonb", catalog.NativeOther},
		{"uuid name in string family", "uuidstr", catalog.NativeString},
	}
	cfg := MustNewConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := column("status", tt.typeName, tt.native)
			newCatalog(table("orders", nil, col))

			info, err := NewMapper(cfg, nil).Map(col)

			require.Error(t, err)
			assert.Nil(t, info)
			assert.ErrorIs(t, err, ErrUnmappable)
			assert.True(t, IsMappingError(err))
			assert.False(t, IsConfigError(err))
			assert.Contains(t, err.Error(), "orders.status")
		})
	}
}

func TestMapDateTimeProviders(t *testing.T) {
	tests := []struct {
		provider     string
		date         string
		datetime     string
		dateFunc     string
		datetimeFunc string
	}{
		{"java-time", "java.time.LocalDate", "java.time.LocalDateTime", "org.jetbrains.exposed.sql.javatime.date", "org.jetbrains.exposed.sql.javatime.datetime"},
		{"kotlin-datetime", "kotlinx.datetime.LocalDate", "kotlinx.datetime.Instant", "org.jetbrains.exposed.sql.kotlin.datetime.date", "org.jetbrains.exposed.sql.kotlin.datetime.timestamp"},
		{"joda-time", "org.joda.time.DateTime", "org.joda.time.DateTime", "org.jetbrains.exposed.sql.jodatime.date", "org.jetbrains.exposed.sql.jodatime.datetime"},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := MustNewConfig(WithDateTime(tt.provider))

			date := mapOne(t, cfg, column("d", "date", catalog.NativeDate))
			ts := mapOne(t, cfg, column("ts", "timestamp", catalog.NativeTimestamp))

			assert.Equal(t, tt.date, date.Type.Qualified())
			assert.Equal(t, tt.dateFunc, date.Accessor.String())
			assert.Equal(t, tt.datetime, ts.Type.Qualified())
			assert.Equal(t, tt.datetimeFunc, ts.Accessor.String())
		})
	}

	t.Run("driver class equal to the provider class maps directly", func(t *testing.T) {
		cfg := MustNewConfig(WithDateTime("kotlin-datetime"))
		col := column("d", "localdate", catalog.NativeOther)
		col.Type.MappedClass = "kotlinx.datetime.LocalDate"

		info := mapOne(t, cfg, col)

		assert.Equal(t, KindDate, info.Kind)
	})

	t.Run("driver class of another provider is unmappable", func(t *testing.T) {
		cfg := MustNewConfig()
		col := column("d", "localdate", catalog.NativeOther)
		col.Type.MappedClass = "kotlinx.datetime.LocalDate"

		_, err := NewMapper(cfg, nil).Map(col)

		assert.ErrorIs(t, err, ErrUnmappable)
	})
}

func TestMapSizes(t *testing.T) {
	t.Run("varchar uses declared length", func(t *testing.T) {
		info := mapOne(t, MustNewConfig(), column("name", "varchar", catalog.NativeString, sized(64)))
		require.NotNil(t, info.Length)
		assert.Equal(t, 64, *info.Length)
	})

	t.Run("varchar without size defaults to 255", func(t *testing.T) {
		info := mapOne(t, MustNewConfig(), column("name", "varchar", catalog.NativeString))
		require.NotNil(t, info.Length)
		assert.Equal(t, DefaultVarcharLength, *info.Length)
	})

	t.Run("char without size defaults to 1", func(t *testing.T) {
		info := mapOne(t, MustNewConfig(), column("flag", "char", catalog.NativeString))
		require.NotNil(t, info.Length)
		assert.Equal(t, DefaultCharLength, *info.Length)
	})

	t.Run("decimal uses precision and scale", func(t *testing.T) {
		info := mapOne(t, MustNewConfig(), column("price", "numeric", catalog.NativeDecimal, scaled(12, 4)))
		assert.Equal(t, 12, *info.Precision)
		assert.Equal(t, 4, *info.Scale)
	})

	t.Run("decimal without size defaults to 10 and 2", func(t *testing.T) {
		info := mapOne(t, MustNewConfig(), column("price", "numeric", catalog.NativeDecimal))
		assert.Equal(t, DefaultDecimalPrecision, *info.Precision)
		assert.Equal(t, DefaultDecimalScale, *info.Scale)
	})

	t.Run("binary length only when known", func(t *testing.T) {
		info := mapOne(t, MustNewConfig(), column("hash", "bytea", catalog.NativeBytes))
		assert.Nil(t, info.Length)
		info = mapOne(t, MustNewConfig(), column("hash", "binary", catalog.NativeBytes, sized(16)))
		assert.Equal(t, 16, *info.Length)
	})

	t.Run("collation applies to string accessors only", func(t *testing.T) {
		cfg := MustNewConfig(WithCollate("utf8_general_ci"))
		assert.Equal(t, "utf8_general_ci", mapOne(t, cfg, column("a", "varchar", catalog.NativeString)).Collate)
		assert.Equal(t, "utf8_general_ci", mapOne(t, cfg, column("b", "text", catalog.NativeString)).Collate)
		assert.Empty(t, mapOne(t, cfg, column("c", "integer", catalog.NativeInteger)).Collate)
	})
}

func TestMapNullability(t *testing.T) {
	t.Run("nullable column", func(t *testing.T) {
		info := mapOne(t, MustNewConfig(), column("nick", "varchar", catalog.NativeString, nullable))
		assert.True(t, info.Nullable)
		assert.Equal(t, "Column<String?>", info.PropertyType().String())
	})

	t.Run("nullable key column is not nullable", func(t *testing.T) {
		col := column("code", "varchar", catalog.NativeString, nullable)
		col.PrimaryKey = true
		info := mapOne(t, MustNewConfig(), col)
		assert.False(t, info.Nullable)
	})
}

func TestMapCustomMapping(t *testing.T) {
	cfg := MustNewConfig(
		WithCustomMapping("price", CustomMapping{Type: "com.example.Money", Function: "com.example.money"}),
		WithCustomMapping("tags", CustomMapping{Type: "com.example.Tags", Function: "com.example.json", Typed: true}),
		WithCustomMapping("legacy", CustomMapping{Type: "com.example.Legacy", Function: "com.example.legacy", ExistingColumn: "old"}),
		WithCustomMapping("broken", CustomMapping{Type: "com.example.Broken"}),
		WithEnumMapping("numeric", EnumMapping{EnumClass: "com.example.Never"}),
	)

	t.Run("custom mapping wins over every type", func(t *testing.T) {
		for _, c := range []*catalog.Column{
			column("price", "numeric", catalog.NativeDecimal),
			column("price", "varchar", catalog.NativeString),
			column("price", "mood", catalog.NativeOther),
		} {
			info := mapOne(t, cfg, c)
			assert.Equal(t, KindCustom, info.Kind)
			assert.Equal(t, "com.example.Money", info.Type.Qualified())
			assert.Equal(t, "com.example.money", info.Accessor.String())
			assert.True(t, info.Custom)
			assert.False(t, info.Typed)
		}
	})

	t.Run("typed custom mapping", func(t *testing.T) {
		info := mapOne(t, cfg, column("tags", "jsonb", catalog.NativeOther))
		assert.True(t, info.Typed)
	})

	t.Run("existing column skips the custom mapping", func(t *testing.T) {
		info := mapOne(t, cfg, column("legacy", "integer", catalog.NativeInteger))
		assert.Equal(t, KindInt, info.Kind)
		assert.False(t, info.Custom)
	})

	t.Run("custom mapping is keyed by raw name", func(t *testing.T) {
		info := mapOne(t, cfg, column("PRICE", "integer", catalog.NativeInteger))
		assert.Equal(t, KindInt, info.Kind)
	})

	t.Run("mapping without function is invalid", func(t *testing.T) {
		_, err := NewMapper(cfg, nil).Map(column("broken", "integer", catalog.NativeInteger))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnmappable)
		assert.True(t, IsConfigError(err))
	})
}

func TestMapEnumMapping(t *testing.T) {
	cfg := MustNewConfig(
		WithEnumMapping("MOOD", EnumMapping{Declaration: "mood", EnumClass: "com.example.Mood", PgEnumClass: "com.example.PGEnum"}),
		WithEnumMapping("varchar", EnumMapping{EnumClass: "com.example.Label"}),
		WithEnumMapping("status", EnumMapping{}),
	)

	t.Run("binds the configured enum class", func(t *testing.T) {
		info := mapOne(t, cfg, column("current_mood", "mood", catalog.NativeOther))

		assert.Equal(t, KindEnum, info.Kind)
		assert.Equal(t, "customEnumeration", info.Accessor.Name)
		assert.Equal(t, "com.example.Mood", info.Type.Qualified())
		require.NotNil(t, info.Enum)
		assert.Equal(t, "com.example.PGEnum", info.Enum.PgEnumClass)
		assert.True(t, info.Custom)
	})

	t.Run("enum mapping wins over built-in rules", func(t *testing.T) {
		info := mapOne(t, cfg, column("label", "VARCHAR", catalog.NativeString))
		assert.Equal(t, KindEnum, info.Kind)
		assert.Equal(t, "com.example.Label", info.Type.Qualified())
		assert.Nil(t, info.Length)
	})

	t.Run("mapping without class is invalid", func(t *testing.T) {
		_, err := NewMapper(cfg, nil).Map(column("s", "status", catalog.NativeOther))

		assert.ErrorIs(t, err, ErrUnmappable)
		assert.True(t, IsConfigError(err))
	})
}

func TestMapReferences(t *testing.T) {
	cat := newCatalog(usersTable(), petsTable())
	owner := cat.Table("pets").Column("owner_id")

	t.Run("scalar accessor without DAO mode", func(t *testing.T) {
		info, err := NewMapper(MustNewConfig(), cat).Map(owner)
		require.NoError(t, err)
		assert.Equal(t, "integer", info.Accessor.Name)
		assert.Nil(t, info.Reference)
	})

	t.Run("reference accessor in DAO mode", func(t *testing.T) {
		info, err := NewMapper(MustNewConfig(WithDao(true)), cat).Map(owner)
		require.NoError(t, err)

		assert.Equal(t, AccessorReference, info.Accessor.ID)
		require.NotNil(t, info.Reference)
		assert.Equal(t, "Users", info.Reference.Object)
		assert.Same(t, cat.Table("users").Column("id"), info.Reference.Target)
		assert.Equal(t, "Column<EntityID<Int>>", info.PropertyType().String())
	})

	t.Run("reference replaces custom mappings", func(t *testing.T) {
		cfg := MustNewConfig(WithDao(true), WithCustomMapping("owner_id", CustomMapping{Type: "com.example.Owner", Function: "com.example.owner"}))
		info, err := NewMapper(cfg, cat).Map(owner)
		require.NoError(t, err)

		assert.Equal(t, AccessorReference, info.Accessor.ID)
		assert.Equal(t, KindInt, info.Kind)
		assert.False(t, info.Custom)
	})

	t.Run("nullable reference", func(t *testing.T) {
		info, err := NewMapper(MustNewConfig(WithDao(true)), cat).Map(cat.Table("pets").Column("sitter_id"))
		require.NoError(t, err)
		assert.Equal(t, "Column<EntityID<Int>?>", info.PropertyType().String())
	})
}

func TestMapDefaults(t *testing.T) {
	cfg := MustNewConfig(WithDefaultExpression("CURRENT_TIMESTAMP", ".defaultExpression(CurrentDateTime)"))

	t.Run("exact match is replaced", func(t *testing.T) {
		info := mapOne(t, cfg, column("created_at", "timestamp", catalog.NativeTimestamp, withDefault("CURRENT_TIMESTAMP")))
		assert.Equal(t, ".defaultExpression(CurrentDateTime)", info.DefaultOverride)
		assert.Nil(t, info.Default)
	})

	t.Run("other defaults pass through", func(t *testing.T) {
		info := mapOne(t, cfg, column("created_at", "timestamp", catalog.NativeTimestamp, withDefault("current_timestamp")))
		assert.Empty(t, info.DefaultOverride)
		require.NotNil(t, info.Default)
		assert.Equal(t, "current_timestamp", *info.Default)
	})
}
