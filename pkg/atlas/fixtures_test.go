package atlas

const plistFormat0 = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
  <key>frames</key>
  <dict>
    <key>coin.png</key>
    <dict>
      <key>x</key><integer>0</integer>
      <key>y</key><integer>0</integer>
      <key>width</key><integer>16</integer>
      <key>height</key><integer>16</integer>
      <key>offsetX</key><real>0.5</real>
      <key>offsetY</key><real>-1</real>
      <key>originalWidth</key><integer>-18</integer>
      <key>originalHeight</key><integer>18</integer>
    </dict>
  </dict>
</dict>
</plist>`

const plistFormat2 = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
  <key>frames</key>
  <dict>
    <key>hero_idle_0.png</key>
    <dict>
      <key>frame</key><string>{{2,2},{30,40}}</string>
      <key>offset</key><string>{1,-2}</string>
      <key>sourceSize</key><string>{32,44}</string>
      <key>rotated</key><true/>
    </dict>
    <key>hero_idle_1.png</key>
    <dict>
      <key>frame</key><string>{{34,2},{30,40}}</string>
      <key>offset</key><string>{0,0}</string>
      <key>sourceSize</key><string>{30,40}</string>
      <key>rotated</key><false/>
    </dict>
  </dict>
  <key>metadata</key>
  <dict>
    <key>format</key><integer>2</integer>
    <key>textureFileName</key><string>hero_sheet.png</string>
  </dict>
</dict>
</plist>`

const plistFormat3 = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
  <key>frames</key>
  <dict>
    <key>bad.png</key>
    <dict>
      <key>spriteOffset</key><string>{0,0}</string>
    </dict>
    <key>tree.png</key>
    <dict>
      <key>aliases</key>
      <array>
        <string>bush.png</string>
        <string>shrub.png</string>
      </array>
      <key>spriteOffset</key><string>{0,1}</string>
      <key>spriteSize</key><string>{20,30}</string>
      <key>spriteSourceSize</key><string>{20,32}</string>
      <key>textureRect</key><string>{{64,0},{20,30}}</string>
      <key>textureRotated</key><false/>
    </dict>
    <key>rock.png</key>
    <dict>
      <key>aliases</key>
      <array>
        <string>shrub.png</string>
        <string>tree.png</string>
      </array>
      <key>spriteOffset</key><string>{0,0}</string>
      <key>spriteSourceSize</key><string>{8,8}</string>
      <key>textureRect</key><string>{{0,64},{8,8}}</string>
      <key>textureRotated</key><true/>
    </dict>
  </dict>
  <key>metadata</key>
  <dict>
    <key>format</key><integer>3</integer>
  </dict>
</dict>
</plist>`

const jsonHash = `{
  "frames": {
    "zeta": {"frame": {"x": 0, "y": 0, "w": 10, "h": 12}, "rotated": false,
             "spriteSourceSize": {"x": 1, "y": 2, "w": 10, "h": 12},
             "sourceSize": {"w": 12, "h": 14}},
    "alpha": {"frame": {"x": 10, "y": 0, "w": 10, "h": 12}, "rotated": true}
  },
  "meta": {"image": "sheet.png", "size": {"w": 64, "h": 64}}
}`

const jsonArray = `{
  "frames": [
    {"filename": "b", "frame": {"x": 0, "y": 0, "w": 4, "h": 4}},
    {"filename": "a", "frame": {"x": 4, "y": 0, "w": 4, "h": 4}},
    {"frame": {"x": 8, "y": 0, "w": 4, "h": 4}}
  ]
}`

const yamlDoc = `
metadata:
  format: 1
  textureFileName: ui.png
frames:
  button_up:
    frame: "{{0,0},{64,32}}"
    offset: "{0,0}"
    sourceSize: "{64,32}"
  button_down:
    frame: "{{0,32},{64,32}}"
  broken: 7
`

const tomlDoc = `
[metadata]
format = 0
textureFileName = "tiles.png"

[frames.water]
x = 0
y = 0
width = 16
height = 16

[frames.grass]
x = 16
y = 0
width = 16
height = 16
offsetX = 1.5
`
