package correction

import (
	"strings"

	"github.com/teranos/declgen/graph"
	"github.com/teranos/declgen/logger"
)

func removeUnusedFunctionSignatures(ctx *Context) error {
	for _, id := range unusedFunctionSignatures {
		if err := ctx.Graph.RemoveFunctionSignature(id); err != nil {
			return err
		}
	}
	return nil
}

// removeDuplicatedProperties keeps the first record of each listed locator.
func removeDuplicatedProperties(ctx *Context) error {
	for _, loc := range duplicatedProperties {
		t, err := ctx.Graph.Type(loc.Type)
		if err != nil {
			return err
		}
		var matches []*graph.Property
		for _, p := range t.Properties {
			if p.Name == loc.Property {
				matches = append(matches, p)
			}
		}
		if len(matches) == 0 {
			// Property reports the lookup error with the locator attached.
			_, err := t.Property(loc.Property)
			return err
		}
		for _, dup := range matches[1:] {
			t.Properties = removeProperty(t.Properties, dup)
		}
	}
	return nil
}

// removeDuplicatedMethods keeps the first overload of each listed locator
// that shares a parameter list with a later one.
func removeDuplicatedMethods(ctx *Context) error {
	for _, loc := range duplicatedMethods {
		t, err := ctx.Graph.Type(loc.Type)
		if err != nil {
			return err
		}
		methods, err := t.MethodsNamed(loc.Method)
		if err != nil {
			return err
		}
		seen := make(map[string]bool, len(methods))
		for _, m := range methods {
			key := parameterKey(m.Parameters)
			if seen[key] {
				if err := t.RemoveMethod(m); err != nil {
					return err
				}
				continue
			}
			seen[key] = true
		}
	}
	return nil
}

func parameterKey(params []*graph.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + ":" + p.Type
	}
	return strings.Join(parts, ",")
}

func removeProperty(props []*graph.Property, p *graph.Property) []*graph.Property {
	for i, candidate := range props {
		if candidate == p {
			return append(props[:i], props[i+1:]...)
		}
	}
	return props
}

// removeSystemMethods drops parameterless object-protocol methods.
func removeSystemMethods(ctx *Context) error {
	removed := 0
	for _, t := range ctx.Graph.Types() {
		kept := t.Methods[:0]
		for _, m := range t.Methods {
			if arity, ok := systemFunctions[m.Name]; ok && len(m.Parameters) == arity {
				removed++
				continue
			}
			kept = append(kept, m)
		}
		t.Methods = kept
	}
	ctx.Log.Debugw("System methods removed", logger.FieldCount, removed)
	return nil
}

func removeArtificialParameters(ctx *Context) error {
	drop := func(params []*graph.Parameter) []*graph.Parameter {
		kept := params[:0]
		for _, p := range params {
			if !p.Modifiers.Has(graph.ModArtificial) {
				kept = append(kept, p)
			}
		}
		return kept
	}
	for _, t := range ctx.Graph.Types() {
		for _, c := range t.Constructors {
			c.Parameters = drop(c.Parameters)
		}
		for _, m := range t.AllMethods() {
			m.Parameters = drop(m.Parameters)
		}
	}
	return nil
}

const (
	funcRudiment     = ",number," + yIEnumerable + "<T>"
	fromFuncRudiment = "Func4<TSource,number,Object,T>"
)

var funcSignatureFixes = strings.NewReplacer(
	"Action3<T>", "Action1<T>",
	"Func4<T,boolean>", "Predicate<T>",
	"Func4<", "Func2<",
	"Func5<", "Func3<",
)

// removeThisParameters drops the trailing receiver argument from collection
// callbacks and rewrites the callback signatures to their shorter arity.
func removeThisParameters(ctx *Context) error {
	for _, name := range thisTypes {
		t, err := ctx.Graph.Type(name)
		if err != nil {
			return err
		}

		lists := make([]*[]*graph.Parameter, 0, len(t.Constructors)+len(t.Methods))
		for _, c := range t.Constructors {
			lists = append(lists, &c.Parameters)
		}
		for _, m := range t.Methods {
			lists = append(lists, &m.Parameters)
		}

		for _, params := range lists {
			if n := len(*params); n > 0 && (*params)[n-1].Name == "thisArg" {
				*params = (*params)[:n-1]
			}
			for _, p := range *params {
				p.Signature = shortenSignature(p.Signature)
			}
		}
	}
	return nil
}

func shortenSignature(sig string) string {
	switch {
	case strings.Contains(sig, funcRudiment):
		return funcSignatureFixes.Replace(strings.ReplaceAll(sig, funcRudiment, ""))
	case strings.Contains(sig, fromFuncRudiment):
		return strings.ReplaceAll(sig, fromFuncRudiment, "Func2<TSource,T>")
	}
	return sig
}

// fixUnionMethods folds the overloads of the canvas group accessor into one
// taking any model item.
func fixUnionMethods(ctx *Context) error {
	t, err := ctx.Graph.Type("GraphModelManager")
	if err != nil {
		return err
	}
	overloads, err := t.MethodsNamed("getCanvasObjectGroup")
	if err != nil {
		return err
	}
	for _, m := range overloads[1:] {
		if err := t.RemoveMethod(m); err != nil {
			return err
		}
	}
	first, err := overloads[0].FirstParameter()
	if err != nil {
		return err
	}
	first.Name = "item"
	first.Type = yIModelItem
	return nil
}
