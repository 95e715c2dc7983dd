package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/exposedgen/catalog"
)

func emit(t *testing.T, cfg *Config, tables ...*catalog.Table) []*File {
	t.Helper()
	g, err := NewGraph(cfg, newCatalog(tables...))
	require.NoError(t, err)
	return Emit(g)
}

func props(d *Decl) map[string]*Property {
	m := make(map[string]*Property, len(d.Props))
	for _, p := range d.Props {
		m[p.Name] = p
	}
	return m
}

func TestEmitUsers(t *testing.T) {
	files := emit(t, MustNewConfig(), usersTable())

	require.Len(t, files, 1)
	f := files[0]
	assert.Equal(t, "Tables", f.Name)
	assert.Equal(t, "Tables.kt", f.Path())
	require.Len(t, f.Decls, 1)

	users := f.Decls[0]
	assert.Equal(t, Object, users.Kind)
	assert.Equal(t, "Users", users.Name)
	assert.Equal(t, "IntIdTable", users.Super.String())
	assert.Equal(t, []string{`"users"`, `"id"`}, users.SuperArgs)
	require.Len(t, users.Props, 2)

	name, createdAt := users.Props[0], users.Props[1]
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, "Column<String>", name.Type.String())
	assert.Equal(t, `varchar("name", 255)`, name.Init)
	assert.Equal(t, "createdAt", createdAt.Name)
	assert.Equal(t, "Column<LocalDateTime?>", createdAt.Type.String())
	assert.Equal(t, `datetime("created_at").nullable()`, createdAt.Init)

	assert.Contains(t, f.Symbols(), Symbol{Package: "org.jetbrains.exposed.sql.javatime", Name: "datetime"})
}

func TestEmitIgnoredTables(t *testing.T) {
	files := emit(t, MustNewConfig(WithIgnoreTables("users")), usersTable())

	require.Len(t, files, 1)
	assert.Empty(t, files[0].Decls)
}

func TestEmitUnmappableColumn(t *testing.T) {
	users := usersTable()
	users.Columns = append(users.Columns, column("status", "user_status", catalog.NativeOther))
	g, err := NewGraph(MustNewConfig(), newCatalog(users))
	require.NoError(t, err)

	files := Emit(g)

	assert.Len(t, files[0].Decls[0].Props, 2)
	assert.NotContains(t, props(files[0].Decls[0]), "status")
	assert.Len(t, g.Diagnostics, 1)
}

func TestEmitPlainTables(t *testing.T) {
	t.Run("composite key", func(t *testing.T) {
		members := table("group_members", []string{"group_id", "user_id"},
			column("group_id", "integer", catalog.NativeInteger),
			column("user_id", "integer", catalog.NativeInteger),
			column("role", "varchar", catalog.NativeString, sized(16), withDefault("'member'")),
		)
		d := emit(t, MustNewConfig(), members)[0].Decls[0]

		assert.Equal(t, "GroupMembers", d.Name)
		assert.Equal(t, "Table", d.Super.String())
		assert.Equal(t, []string{`"group_members"`}, d.SuperArgs)
		p := props(d)
		assert.Equal(t, `integer("group_id")`, p["groupId"].Init)
		assert.Equal(t, `varchar("role", 16).default("member")`, p["role"].Init)
		require.Contains(t, p, "primaryKey")
		assert.Equal(t, "PrimaryKey(groupId, userId)", p["primaryKey"].Init)
		assert.True(t, p["primaryKey"].Override)
		assert.True(t, p["primaryKey"].Type.IsZero())
	})

	t.Run("assigned integer key keeps its column", func(t *testing.T) {
		d := emit(t, MustNewConfig(), table("codes", []string{"code"}, column("code", "integer", catalog.NativeInteger)))[0].Decls[0]

		assert.Equal(t, "Table", d.Super.String())
		p := props(d)
		assert.Equal(t, `integer("code")`, p["code"].Init)
		assert.Equal(t, "PrimaryKey(code)", p["primaryKey"].Init)
	})

	t.Run("auto-increment column", func(t *testing.T) {
		logs := table("logs", nil, column("seq", "integer", catalog.NativeInteger, autoIncrement))
		d := emit(t, MustNewConfig(), logs)[0].Decls[0]

		assert.Equal(t, `integer("seq").autoIncrement()`, props(d)["seq"].Init)
	})
}

func TestEmitGenericIdTable(t *testing.T) {
	countries := table("countries", []string{"code"},
		column("code", "char", catalog.NativeString, sized(2)),
		column("name", "text", catalog.NativeString),
	)
	d := emit(t, MustNewConfig(), countries)[0].Decls[0]

	assert.Equal(t, "IdTable<String>", d.Super.String())
	assert.Equal(t, []string{`"countries"`}, d.SuperArgs)
	require.Len(t, d.Props, 3)
	id := d.Props[0]
	assert.Equal(t, "id", id.Name)
	assert.True(t, id.Override)
	assert.Equal(t, "Column<EntityID<String>>", id.Type.String())
	assert.Equal(t, `char("code", 2).entityId()`, id.Init)
	assert.Equal(t, "PrimaryKey(id)", d.Props[1].Init)
	assert.Equal(t, `text("name")`, d.Props[2].Init)
}

func TestEmitColumnInitializers(t *testing.T) {
	cfg := MustNewConfig(
		WithCollate("C"),
		WithCustomMapping("price", CustomMapping{Type: "com.example.Money", Function: "com.example.db.money"}),
		WithCustomMapping("tags", CustomMapping{Type: "com.example.Tags", Function: "com.example.db.json", Typed: true}),
		WithEnumMapping("mood", EnumMapping{Declaration: "mood", EnumClass: "com.example.Mood", PgEnumClass: "com.example.db.PGEnum"}),
		WithEnumMapping("level", EnumMapping{EnumClass: "com.example.Level"}),
		WithDefaultExpression("CURRENT_TIMESTAMP", ".defaultExpression(CurrentDateTime)"),
	)
	things := table("things", nil,
		column("title", "varchar", catalog.NativeString, sized(80)),
		column("price", "numeric", catalog.NativeDecimal),
		column("tags", "jsonb", catalog.NativeOther, nullable),
		column("current_mood", "mood", catalog.NativeOther),
		column("level", "level", catalog.NativeOther),
		column("amount", "numeric", catalog.NativeDecimal, scaled(8, 3)),
		column("token", "uuid", catalog.NativeUUID, withDefault("'a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11'")),
		column("updated_at", "timestamp", catalog.NativeTimestamp, withDefault("CURRENT_TIMESTAMP")),
		column("payload", "blob", catalog.NativeBlob, nullable),
	)
	f := emit(t, cfg, things)[0]
	p := props(f.Decls[0])

	assert.Equal(t, `varchar("title", 80, collate = "C")`, p["title"].Init)
	assert.Equal(t, `money("price")`, p["price"].Init)
	assert.Equal(t, "Column<Money>", p["price"].Type.String())
	assert.Equal(t, `json<Tags>("tags").nullable()`, p["tags"].Init)
	assert.Equal(t, `customEnumeration("current_mood", "mood", { value -> Mood.valueOf(value as String) }, { PGEnum("mood", it) })`, p["currentMood"].Init)
	assert.Equal(t, `customEnumeration("level", null, { value -> Level.valueOf(value as String) }, { it.name })`, p["level"].Init)
	assert.Equal(t, `decimal("amount", 8, 3)`, p["amount"].Init)
	assert.Equal(t, `uuid("token").default(UUID.fromString("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"))`, p["token"].Init)
	assert.Equal(t, `datetime("updated_at").defaultExpression(CurrentDateTime)`, p["updatedAt"].Init)
	assert.Equal(t, "Column<ExposedBlob?>", p["payload"].Type.String())

	syms := f.Symbols()
	assert.Contains(t, syms, Symbol{Package: "com.example.db", Name: "money"})
	assert.Contains(t, syms, Symbol{Package: "com.example.db", Name: "PGEnum"})
	assert.Contains(t, syms, Symbol{Package: "com.example", Name: "Mood"})
}

func TestEmitDefaultExpressionVerbatim(t *testing.T) {
	cfg := MustNewConfig(
		WithDefaultExpression("now()", ".clientDefault { LocalDateTime.now() }"),
		WithDefaultExpression("0", " // zero"),
	)
	counters := table("counters", nil,
		column("touched_at", "timestamp", catalog.NativeTimestamp, withDefault("now()")),
		column("hits", "integer", catalog.NativeInteger, withDefault("0")),
	)
	p := props(emit(t, cfg, counters)[0].Decls[0])

	assert.Equal(t, `datetime("touched_at").clientDefault { LocalDateTime.now() }`, p["touchedAt"].Init)
	assert.Equal(t, `integer("hits") // zero`, p["hits"].Init)
}

func TestEmitLayouts(t *testing.T) {
	t.Run("single file with package", func(t *testing.T) {
		files := emit(t, MustNewConfig(WithPackage("com.example.db"), WithSingleFile("Schema"), WithHeader("h")), usersTable(), petsTable())

		require.Len(t, files, 1)
		assert.Equal(t, "com/example/db/Schema.kt", files[0].Path())
		assert.Equal(t, "h", files[0].Header)
		assert.Len(t, files[0].Decls, 2)
	})

	t.Run("per table with raw names", func(t *testing.T) {
		files := emit(t, MustNewConfig(WithPerTable(false)), table("order_items", nil, column("qty", "integer", catalog.NativeInteger)))

		require.Len(t, files, 1)
		assert.Equal(t, "order_items", files[0].Name)
		assert.Equal(t, "OrderItems", files[0].Decls[0].Name)
	})

	t.Run("per table with full names", func(t *testing.T) {
		files := emit(t, MustNewConfig(WithPerTable(true), WithPackage("db")), usersTable(), petsTable())

		require.Len(t, files, 2)
		assert.Equal(t, "db/Users.kt", files[0].Path())
		assert.Equal(t, "db/Pets.kt", files[1].Path())
	})
}

func TestEmitDao(t *testing.T) {
	files := emit(t, MustNewConfig(WithDao(true), WithPackage("com.example")), usersTable(), petsTable())
	decls := files[0].Decls
	require.Len(t, decls, 4)

	user := decls[1]
	assert.Equal(t, Class, user.Kind)
	assert.Equal(t, "User", user.Name)
	assert.Equal(t, "IntEntity", user.Super.String())
	assert.Equal(t, []Param{{Name: "id", Type: TypeEntityID.Of(TypeInt)}}, user.Params)
	require.NotNil(t, user.Companion)
	assert.Equal(t, "IntEntityClass<User>", user.Companion.Super.String())
	assert.Equal(t, []string{"Users"}, user.Companion.SuperArgs)
	assert.Equal(t, "Users.name", props(user)["name"].Init)
	assert.True(t, props(user)["name"].Delegate)
	assert.True(t, props(user)["name"].Mutable)

	pets := decls[2]
	assert.Equal(t, `reference("owner_id", Users)`, props(pets)["ownerId"].Init)
	assert.Equal(t, `reference("sitter_id", Users).nullable()`, props(pets)["sitterId"].Init)

	pet := decls[3]
	assert.Equal(t, "Pet", pet.Name)
	assert.Equal(t, "LongEntity", pet.Super.String())
	assert.Equal(t, "User referencedOn Pets.ownerId", props(pet)["ownerId"].Init)
	assert.Equal(t, "User optionalReferencedOn Pets.sitterId", props(pet)["sitterId"].Init)
}

func TestEmitDaoDistinctNames(t *testing.T) {
	user := table("user", []string{"id"}, column("id", "integer", catalog.NativeInteger, autoIncrement))
	users := table("users", []string{"id"},
		column("id", "integer", catalog.NativeInteger, autoIncrement),
		column("parent_id", "integer", catalog.NativeInteger, nullable, references("users", "id")),
	)
	files := emit(t, MustNewConfig(WithDao(true)), user, users)
	require.Len(t, files, 1)

	var names []string
	for _, d := range files[0].Decls {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"User", "UserEntity", "Users", "UsersEntity"}, names)

	entity := files[0].Decls[3]
	assert.Equal(t, "IntEntityClass<UsersEntity>", entity.Companion.Super.String())
	assert.Equal(t, "UsersEntity optionalReferencedOn Users.parentId", props(entity)["parentId"].Init)
}

func TestEmitIdempotent(t *testing.T) {
	cfg := MustNewConfig(WithDao(true))
	first := emit(t, cfg, usersTable(), petsTable())
	second := emit(t, cfg, usersTable(), petsTable())

	assert.Equal(t, first, second)
}
