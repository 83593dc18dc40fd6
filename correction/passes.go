package correction

// DefaultPasses returns the full correction order for the yFiles feed.
func DefaultPasses() []Pass {
	passes := []Pass{
		{Name: "normalize-fields", Provides: []Shape{ShapeFieldsNormalized}, Apply: normalizeFields},
		{Name: "clean-base-object", Apply: cleanBaseObject},

		{Name: "remove-unused-function-signatures", Apply: removeUnusedFunctionSignatures},
		{Name: "remove-duplicated-properties", Requires: []Shape{ShapeFieldsNormalized}, Apply: removeDuplicatedProperties},
		{Name: "remove-duplicated-methods", Apply: removeDuplicatedMethods},
		{Name: "remove-system-methods", Provides: []Shape{ShapeSystemPruned}, Apply: removeSystemMethods},
		{Name: "remove-artificial-parameters", Apply: removeArtificialParameters},
		{Name: "remove-this-parameters", Provides: []Shape{ShapeParametersPruned}, Apply: removeThisParameters},
		{Name: "fix-union-methods", Requires: []Shape{ShapeParametersPruned}, OnlyIn: ModeNormal, Apply: fixUnionMethods},

		{Name: "fix-constant-generics", Requires: []Shape{ShapeFieldsNormalized}, Apply: fixConstantGenerics},
		{Name: "fix-function-generics", Requires: []Shape{ShapeParametersPruned}, Apply: fixFunctionGenerics},
		{Name: "fix-cursor-generics", Requires: []Shape{ShapeFieldsNormalized}, Apply: fixCursorGenerics},
		{Name: "fix-map-generics", Requires: []Shape{ShapeFieldsNormalized}, Apply: fixMapGenerics},
		{Name: "fix-dp-key-generics", Provides: []Shape{ShapeGenericsRepaired}, Apply: fixDpKeyGenerics},

		{Name: "fix-return-types", Requires: []Shape{ShapeSystemPruned}, Apply: fixReturnTypes},
		{Name: "fix-property-types", Requires: []Shape{ShapeFieldsNormalized}, Apply: fixPropertyTypes},
		{Name: "fix-method-parameter-types", Requires: []Shape{ShapeGenericsRepaired}, Provides: []Shape{ShapeTypesReplaced}, Apply: fixMethodParameterTypes},

		{Name: "fix-property-nullability", Requires: []Shape{ShapeFieldsNormalized}, Apply: fixPropertyNullability},
		{Name: "fix-method-parameter-nullability", Requires: []Shape{ShapeParametersPruned}, Apply: fixMethodParameterNullability},
		{Name: "fix-method-nullability", Apply: fixMethodNullability},

		{Name: "fix-constructor-parameter-names", Requires: []Shape{ShapeParametersPruned}, Apply: fixConstructorParameterNames},
		{Name: "fix-method-parameter-names", Requires: []Shape{ShapeParametersPruned}, Apply: fixMethodParameterNames},

		{Name: "fix-method-parameter-optionality", Requires: []Shape{ShapeParametersPruned}, Apply: fixMethodParameterOptionality},
		{Name: "fix-method-generic-bounds", Requires: []Shape{ShapeGenericsRepaired}, Apply: fixMethodGenericBounds},

		{Name: "add-missed-properties", Requires: []Shape{ShapeFieldsNormalized}, Apply: addMissedProperties},
		{Name: "add-missed-methods", Requires: []Shape{ShapeSystemPruned}, Provides: []Shape{ShapeMembersAdded}, Apply: addMissedMethods},
	}

	for _, f := range families() {
		passes = append(passes, f.pass())
	}

	return append(passes,
		Pass{
			Name:     "refine-numbers",
			Requires: []Shape{ShapeFieldsNormalized, ShapeTypesReplaced, ShapeMembersAdded},
			Provides: []Shape{ShapeNumbersRefined},
			Apply:    refineNumbers,
		},
		Pass{Name: "mark-deprecated", Requires: []Shape{ShapeFieldsNormalized}, OnlyIn: ModeNormal, Apply: markDeprecated},
	)
}
