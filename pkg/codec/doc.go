/*
Package codec converts automata to and from their persisted document form.

Two formats are supported, chosen by file extension: JSON (.json) and YAML
(.yaml, .yml). Both are decoded into a generic map, validated against
schema.Automaton, mapped onto typed records with mapstructure and finally
turned into a validated domain.Automaton.

The label "0" is the persisted absent-edge sentinel, as are an empty or missing
character; a literal '0' label therefore cannot be persisted.
*/
package codec
