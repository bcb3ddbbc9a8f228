package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeBrandContext(t *testing.T) {
	brand := &Brand{
		Name:        "Acme",
		Industry:    "footwear",
		Website:     "https://acme.example",
		Description: "friendly sneaker brand",
	}
	kit := &BrandKit{
		Industry:    "athletic footwear",
		Guidelines:  "always optimistic",
		Constraints: "never mention competitors",
	}

	t.Run("两者皆缺失返回 nil", func(t *testing.T) {
		assert.Nil(t, MergeBrandContext(nil, nil))
	})

	t.Run("只有品牌身份", func(t *testing.T) {
		bc := MergeBrandContext(brand, nil)
		require.NotNil(t, bc)
		assert.Equal(t, "Acme", bc.Name)
		assert.Equal(t, "footwear", bc.Industry)
		// 品牌简介兜底为风格指南
		assert.Equal(t, "friendly sneaker brand", bc.Guidelines)
		assert.Empty(t, bc.Constraints)
	})

	t.Run("只有风格手册", func(t *testing.T) {
		bc := MergeBrandContext(nil, kit)
		require.NotNil(t, bc)
		assert.Empty(t, bc.Name)
		assert.Equal(t, "athletic footwear", bc.Industry)
		assert.Equal(t, "always optimistic", bc.Guidelines)
		assert.Equal(t, "never mention competitors", bc.Constraints)
	})

	t.Run("重叠字段以手册为准", func(t *testing.T) {
		bc := MergeBrandContext(brand, kit)
		require.NotNil(t, bc)
		assert.Equal(t, "Acme", bc.Name)
		assert.Equal(t, "https://acme.example", bc.Website)
		assert.Equal(t, "athletic footwear", bc.Industry)
		assert.Equal(t, "always optimistic", bc.Guidelines)
	})

	t.Run("手册空字段不覆盖品牌身份", func(t *testing.T) {
		bc := MergeBrandContext(brand, &BrandKit{Constraints: "no emojis"})
		require.NotNil(t, bc)
		assert.Equal(t, "footwear", bc.Industry)
		assert.Equal(t, "friendly sneaker brand", bc.Guidelines)
		assert.Equal(t, "no emojis", bc.Constraints)
	})
}
